package sms

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/GlebRadaev/seva/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testCfg = Config{AccountSID: "AC123", AuthToken: "token", From: "+15550001111"}

func TestTwilioSender_Send(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
		expectedErr string
	}{
		{
			name: "Delivered",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Post(gomock.Any(), "https://api.twilio.com/2010-04-01/Accounts/AC123/Messages.json", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
						form, err := url.ParseQuery(string(body))
						assert.NoError(t, err)
						assert.Equal(t, "+919876543210", form.Get("To"))
						assert.Equal(t, "+15550001111", form.Get("From"))
						assert.Equal(t, "Your OTP for Seva login is: 123456", form.Get("Body"))
						assert.Equal(t, "Basic "+basicAuth("AC123", "token"), headers.Get("Authorization"))
						return http.StatusCreated, []byte(`{"sid":"SM1"}`), http.Header{}, nil
					})
			},
		},
		{
			name: "Provider rejection",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadRequest, []byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`), http.Header{}, nil)
			},
			expectedErr: "twilio returned 400: Invalid 'To' Phone Number (code 21211)",
		},
		{
			name: "Unexpected status without body",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, nil, http.Header{}, nil)
			},
			expectedErr: "twilio returned unexpected status 502",
		},
		{
			name: "Transport error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("dial tcp: timeout"))
			},
			expectedErr: "twilio request failed: dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(client)

			err := NewTwilioSender(testCfg, client).Send(context.Background(), "9876543210", "Your OTP for Seva login is: 123456")

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTwilioSender_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTwilioSender(testCfg, clients.NewMockHTTPClientI(ctrl)).Send(ctx, "9876543210", "hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTwilioSender_DeadlineReachesTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := clients.NewMockHTTPClientI(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := ctx.Deadline()

	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(got context.Context, _ string, _ http.Header, _ []byte) (int, []byte, http.Header, error) {
			deadline, ok := got.Deadline()
			assert.True(t, ok)
			assert.Equal(t, want, deadline)
			return http.StatusCreated, nil, http.Header{}, nil
		})

	assert.NoError(t, NewTwilioSender(testCfg, client).Send(ctx, "9876543210", "hi"))
}

func TestNew(t *testing.T) {
	assert.IsType(t, DisabledSender{}, New(Config{}, nil))
	assert.IsType(t, &TwilioSender{}, New(testCfg, nil))
	assert.NoError(t, DisabledSender{}.Send(context.Background(), "9876543210", "hi"))
}

func TestE164(t *testing.T) {
	assert.Equal(t, "+919876543210", E164("9876543210"))
	assert.Equal(t, "+15550001111", E164("+15550001111"))
}
