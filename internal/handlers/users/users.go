package users

//go:generate mockgen -destination=mock_service.go -package=users . Service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, patch domain.UserPatch) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func fail(w http.ResponseWriter, code int, message string) {
	utils.RespondWithJSON(w, code, dto.ProfileResponseDTO{Success: false, Message: message})
}

// GetProfile godoc
//
//	@Summary	Current user's profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	401	{object}	utils.Response			"User not authorized"
//	@Failure	404	{object}	dto.ProfileResponseDTO	"User not found"
//	@Router		/api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	data := dto.NewUserDTO(user)
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Success: true, Data: &data})
}

// UpdateProfile godoc
//
//	@Summary	Update the current user's profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileRequestDTO	true	"Fields to change"
//	@Success	200		{object}	dto.ProfileResponseDTO
//	@Failure	400		{object}	dto.ProfileResponseDTO	"Invalid input or duplicate email/phone"
//	@Failure	401		{object}	utils.Response			"User not authorized"
//	@Failure	404		{object}	dto.ProfileResponseDTO	"User not found"
//	@Router		/api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, domain.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Bio:   req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			fail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrConflict):
			fail(w, http.StatusBadRequest, "Email or phone already in use")
		case errors.Is(err, domain.ErrNotFound):
			fail(w, http.StatusNotFound, "User not found")
		default:
			fail(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	data := dto.NewUserDTO(user)
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Success: true, Data: &data, Message: "Profile updated successfully"})
}
