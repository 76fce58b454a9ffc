package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const clientURL = "http://localhost:5173"

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*AuthHandler, *MockService, *MockOTPService, *MockOAuthService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	otpService := NewMockOTPService(ctrl)
	oauthService := NewMockOAuthService(ctrl)
	handler := New(service, otpService, oauthService, clientURL)
	return handler, service, otpService, oauthService
}

var asha = &domain.User{ID: 1, Name: "Asha Rao", Phone: ptr("9876543210"), PasswordHash: "hashed", Provider: domain.ProviderLocal}

func TestRegisterHandler(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RegisterLocal(ctx, "Asha Rao", "asha@example.com", "9876543210", "secret1").Return(asha, nil)
				service.EXPECT().GenerateToken(1).Return("jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate phone",
			body: `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RegisterLocal(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "User already exists",
		},
		{
			name: "Validation failure",
			body: `{"name":"As","email":"asha@example.com","phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RegisterLocal(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(domain.ErrValidation, errors.New("name must be at least 3 characters")))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed\nname must be at least 3 characters",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure is hidden",
			body: `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RegisterLocal(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Server error",
		},
		{
			name: "Error generating token",
			body: `{"name":"Asha Rao","email":"asha@example.com","phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RegisterLocal(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(asha, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _, _ := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.AuthResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "jwt-token", resp.Token)
			assert.Equal(t, 1, resp.User.ID)
			assert.Equal(t, "Bearer jwt-token", rr.Header().Get("Authorization"))
			assert.NotContains(t, rr.Body.String(), "hashed")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"phone":"9876543210","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AuthenticateLocal(ctx, "9876543210", "secret1").Return(asha, nil)
				service.EXPECT().GenerateToken(1).Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: `{"phone":"9876543210","password":"wrong"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AuthenticateLocal(ctx, "9876543210", "wrong").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid credentials",
		},
		{
			name: "Unknown phone",
			body: `{"phone":"9000000000","password":"secret1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AuthenticateLocal(ctx, "9000000000", "secret1").Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name:          "Invalid request body",
			body:          `[`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _, _ := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSendOTPHandler(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		issueErr      error
		expectedCode  int
		expectedError string
	}{
		{name: "Sent", expectedCode: http.StatusOK},
		{name: "Malformed phone", issueErr: domain.ErrValidation, expectedCode: http.StatusBadRequest, expectedError: "Invalid mobile number format"},
		{name: "Unregistered", issueErr: domain.ErrNotFound, expectedCode: http.StatusNotFound, expectedError: "Mobile number not registered"},
		{name: "Too soon", issueErr: domain.ErrRateLimited, expectedCode: http.StatusTooManyRequests, expectedError: "Please wait before requesting another OTP"},
		{name: "Storage failure", issueErr: errors.New("database error"), expectedCode: http.StatusInternalServerError, expectedError: "Failed to send OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, otpService, _ := NewMock(t)
			otpService.EXPECT().Issue(ctx, "9876543210").Return(tt.issueErr)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/send-otp", bytes.NewReader([]byte(`{"contact":"9876543210"}`)))
			rr := httptest.NewRecorder()

			handler.SendOTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "OTP sent successfully", resp.Message)
			}
		})
	}
}

func TestVerifyOTPHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("Correct code", func(t *testing.T) {
		handler, service, otpService, _ := NewMock(t)
		otpService.EXPECT().Verify(ctx, "9876543210", "123456").Return(asha, nil)
		service.EXPECT().GenerateToken(1).Return("jwt-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", bytes.NewReader([]byte(`{"contact":"9876543210","otp":"123456"}`)))
		rr := httptest.NewRecorder()
		handler.VerifyOTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.AuthResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "jwt-token", resp.Token)
	})

	t.Run("Reused code", func(t *testing.T) {
		handler, _, otpService, _ := NewMock(t)
		otpService.EXPECT().Verify(ctx, "9876543210", "123456").Return(nil, domain.ErrInvalidOTP)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", bytes.NewReader([]byte(`{"contact":"9876543210","otp":"123456"}`)))
		rr := httptest.NewRecorder()
		handler.VerifyOTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp utils.Response
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid or expired OTP", resp.Message)
	})
}

func TestGoogleHandlers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		url         string
		prepareMock func(oauthService *MockOAuthService)
		call        func(h *AuthHandler) http.HandlerFunc
		location    string
	}{
		{
			name: "Login redirects to consent page",
			url:  "/api/auth/google",
			prepareMock: func(oauthService *MockOAuthService) {
				oauthService.EXPECT().Begin(ctx).Return("https://accounts.google.com/o/oauth2/auth?state=s", nil)
			},
			call:     func(h *AuthHandler) http.HandlerFunc { return h.GoogleLogin },
			location: "https://accounts.google.com/o/oauth2/auth?state=s",
		},
		{
			name: "Login falls back to client login page",
			url:  "/api/auth/google",
			prepareMock: func(oauthService *MockOAuthService) {
				oauthService.EXPECT().Begin(ctx).Return("", domain.ErrAuthProvider)
			},
			call:     func(h *AuthHandler) http.HandlerFunc { return h.GoogleLogin },
			location: clientURL + "/login",
		},
		{
			name: "Callback hands the token to the client",
			url:  "/api/auth/google/callback?state=s&code=c",
			prepareMock: func(oauthService *MockOAuthService) {
				oauthService.EXPECT().Complete(ctx, "s", "c").Return("a.b+c", nil)
			},
			call:     func(h *AuthHandler) http.HandlerFunc { return h.GoogleCallback },
			location: clientURL + "/auth-success?token=a.b%2Bc",
		},
		{
			name: "Callback failure",
			url:  "/api/auth/google/callback?state=s",
			prepareMock: func(oauthService *MockOAuthService) {
				oauthService.EXPECT().Complete(ctx, "s", "").Return("", domain.ErrAuthProvider)
			},
			call:     func(h *AuthHandler) http.HandlerFunc { return h.GoogleCallback },
			location: clientURL + "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _, oauthService := NewMock(t)
			tt.prepareMock(oauthService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			tt.call(handler)(rr, req)

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}
