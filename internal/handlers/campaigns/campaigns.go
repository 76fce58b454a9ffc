package campaigns

//go:generate mockgen -destination=mock_service.go -package=campaigns . Service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	maxUploadSize = 50 << 20
	maxMemory     = 8 << 20
)

type Service interface {
	Create(ctx context.Context, ownerID int, c *domain.Campaign, image *domain.Upload, documents []domain.Upload) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	ListMine(ctx context.Context, userID int) ([]domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, error)
	Update(ctx context.Context, userID, id int, patch domain.CampaignPatch) (*domain.Campaign, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to update this campaign")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
	}
}

func openAll(headers []*multipart.FileHeader) ([]domain.Upload, func(), error) {
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		uploads = append(uploads, domain.Upload{Filename: fh.Filename, Body: f})
	}
	return uploads, closeAll, nil
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Multipart form with the campaign fields, an optional image and up to 5 documents (jpg, jpeg, png, pdf).
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title				formData	string	true	"Title"
//	@Param			description			formData	string	true	"Description"
//	@Param			goal				formData	integer	true	"Goal amount"
//	@Param			organizer			formData	string	true	"Organizer"
//	@Param			beneficiaryName		formData	string	true	"Beneficiary name"
//	@Param			medicalCondition	formData	string	true	"Medical condition"
//	@Param			email				formData	string	true	"Contact email"
//	@Param			phone				formData	string	true	"Contact phone"
//	@Param			story				formData	string	true	"Story"
//	@Param			image				formData	file	false	"Cover image"
//	@Param			documents			formData	file	false	"Supporting documents"
//	@Success		201					{object}	dto.CampaignDTO
//	@Failure		400					{object}	utils.Response	"Invalid input"
//	@Failure		401					{object}	utils.Response	"User not authorized"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	goal, err := strconv.ParseInt(r.FormValue("goal"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "goal must be a whole number")
		return
	}
	campaign := &domain.Campaign{
		Title:            r.FormValue("title"),
		Description:      r.FormValue("description"),
		Goal:             goal,
		Organizer:        r.FormValue("organizer"),
		BeneficiaryName:  r.FormValue("beneficiaryName"),
		MedicalCondition: r.FormValue("medicalCondition"),
		Email:            r.FormValue("email"),
		Phone:            r.FormValue("phone"),
		Story:            r.FormValue("story"),
	}

	var image *domain.Upload
	if fhs := r.MultipartForm.File["image"]; len(fhs) > 0 {
		uploads, closeImage, err := openAll(fhs[:1])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Can't read uploaded image")
			return
		}
		defer closeImage()
		image = &uploads[0]
	}
	documents, closeDocs, err := openAll(r.MultipartForm.File["documents"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Can't read uploaded documents")
		return
	}
	defer closeDocs()

	created, err := h.campaignService.Create(r.Context(), userID, campaign, image, documents)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCampaignDTO(created))
}

// List godoc
//
//	@Summary	List all campaigns, newest first
//	@Tags		Campaigns
//	@Produce	json
//	@Success	200	{array}		dto.CampaignDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDTOs(campaigns))
}

// ListMine godoc
//
//	@Summary	List campaigns created by the current user
//	@Tags		Campaigns
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.CampaignDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/campaigns/my-campaigns [get]
func (h *CampaignHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	campaigns, err := h.campaignService.ListMine(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDTOs(campaigns))
}

// Get godoc
//
//	@Summary	Get a campaign
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id	path		int	true	"Campaign id"
//	@Success	200	{object}	dto.CampaignDTO
//	@Failure	400	{object}	utils.Response	"Invalid campaign id"
//	@Failure	404	{object}	utils.Response	"Campaign not found"
//	@Router		/api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	campaign, err := h.campaignService.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDTO(campaign))
}

// Update godoc
//
//	@Summary		Update a campaign
//	@Description	Only the creator may update. Image, documents, creator and totals cannot be changed here.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Campaign id"
//	@Param			request	body		dto.UpdateCampaignRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.CampaignDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Router			/api/campaigns/{id} [put]
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	var req dto.UpdateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.campaignService.Update(r.Context(), userID, id, req.Patch())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDTO(updated))
}
