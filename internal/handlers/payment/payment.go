package payment

//go:generate mockgen -destination=mock_service.go -package=payment . Service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*domain.PaymentOrder, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a payment order
//	@Description	Opens a gateway order for the amount in rupees. The order is returned as issued by the gateway.
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Amount and currency"
//	@Success		200		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Gateway failure"
//	@Router			/api/payment/create-order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.paymentService.CreateOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, "Amount must be greater than zero")
			return
		}
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create order", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{Order: order})
}
