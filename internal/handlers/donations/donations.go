package donations

//go:generate mockgen -destination=mock_service.go -package=donations . Service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	RecordDonation(ctx context.Context, d *domain.Donation) (*domain.Donation, error)
	TotalFor(ctx context.Context, campaignID int) (int64, error)
	ListRecent(ctx context.Context) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func parseCampaignID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	return id, err == nil && id > 0
}

// Donate godoc
//
//	@Summary		Record a donation
//	@Description	Stores the donation, adds it to the campaign total and texts the donor a thank-you note.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/donate [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	campaignID, ok := parseCampaignID(req.CampaignID.String())
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	_, err := h.donationService.RecordDonation(r.Context(), &domain.Donation{
		CampaignID: campaignID,
		DonorName:  req.Name,
		Amount:     req.Amount,
		Email:      req.Email,
		Phone:      req.Phone,
		PaymentRef: req.Reference(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Donation failed")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Donation successful and recorded."})
}

// Total godoc
//
//	@Summary	Total donated to a campaign
//	@Tags		Donations
//	@Produce	json
//	@Param		campaignId	path		int	true	"Campaign id"
//	@Success	200			{object}	dto.TotalResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid campaign id"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/donations/total/{campaignId} [get]
func (h *DonationHandler) Total(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := parseCampaignID(chi.URLParam(r, "campaignId"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	total, err := h.donationService.TotalFor(r.Context(), campaignID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch total")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TotalResponseDTO{Total: total})
}

// List godoc
//
//	@Summary	Latest 50 donations
//	@Tags		Donations
//	@Produce	json
//	@Success	200	{array}		dto.DonationDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/donations [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.ListRecent(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationDTOs(donations))
}
