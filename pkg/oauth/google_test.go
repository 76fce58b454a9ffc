package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newGoogleStub(t *testing.T, userinfo string, status int) (*GoogleProvider, func()) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(userinfo))
	})
	srv := httptest.NewServer(mux)

	p := NewGoogleProvider(GoogleConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
	}, srv.Client())
	p.conf.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	p.userInfoURL = srv.URL + "/userinfo"
	return p, srv.Close
}

func TestGoogleProvider_Exchange(t *testing.T) {
	tests := []struct {
		name            string
		userinfo        string
		status          int
		expectedProfile *domain.ExternalProfile
		expectError     bool
	}{
		{
			name:     "Verified email",
			userinfo: `{"sub":"g-1","name":"Asha Rao","email":"asha@example.com","email_verified":true}`,
			status:   http.StatusOK,
			expectedProfile: &domain.ExternalProfile{
				ExternalID: "g-1", DisplayName: "Asha Rao", Email: "asha@example.com",
			},
		},
		{
			name:     "Unverified email is dropped",
			userinfo: `{"sub":"g-2","name":"Ravi","email":"ravi@example.com","email_verified":false}`,
			status:   http.StatusOK,
			expectedProfile: &domain.ExternalProfile{
				ExternalID: "g-2", DisplayName: "Ravi",
			},
		},
		{
			name:        "Userinfo failure",
			userinfo:    `{}`,
			status:      http.StatusUnauthorized,
			expectError: true,
		},
		{
			name:        "Missing subject",
			userinfo:    `{"name":"Nobody"}`,
			status:      http.StatusOK,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, stop := newGoogleStub(t, tt.userinfo, tt.status)
			defer stop()

			profile, err := p.Exchange(context.Background(), "auth-code")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}
		})
	}
}

func TestGoogleProvider_AuthURL(t *testing.T) {
	p := NewGoogleProvider(GoogleConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://cb"}, nil)

	u, err := url.Parse(p.AuthURL("state-1"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-1", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "http://cb", u.Query().Get("redirect_uri"))
}

func TestGoogleProvider_NotConfigured(t *testing.T) {
	p := NewGoogleProvider(GoogleConfig{}, nil)

	_, err := p.Exchange(context.Background(), "code")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, p.Configured())
}
