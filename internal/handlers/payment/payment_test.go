package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestCreateOrderHandler(t *testing.T) {
	ctx := context.Background()
	order := &domain.PaymentOrder{ID: "order_1", Entity: "order", Amount: 50000, Currency: "INR", Receipt: "receipt_order_1", Status: "created"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedOrder *domain.PaymentOrder
		expectedError utils.Response
	}{
		{
			name: "Order created",
			body: `{"amount":500}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(ctx, float64(500), "").Return(order, nil)
			},
			expectedCode:  http.StatusOK,
			expectedOrder: order,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":-5,"currency":"INR"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(ctx, float64(-5), "INR").Return(nil, domain.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: utils.Response{Message: "Amount must be greater than zero"},
		},
		{
			name: "Gateway failure carries the cause",
			body: `{"amount":500}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateOrder(ctx, float64(500), "").Return(nil, errors.New("failed to create order: razorpay returned 401: bad key"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedError: utils.Response{
				Message: "Failed to create order",
				Error:   "failed to create order: razorpay returned 401: bad key",
			},
		},
		{
			name:          "Invalid body",
			body:          `{"amount":"five"}`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: utils.Response{Message: "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			handler := New(service)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateOrder(rr, httptest.NewRequest(http.MethodPost, "/api/payment/create-order", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedOrder != nil {
				var resp dto.CreateOrderResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedOrder, resp.Order)
				return
			}
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedError, resp)
		})
	}
}
