package auth

//go:generate mockgen -destination=mock_service.go -package=auth . Service,OTPService,OAuthService

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/logger"
	"github.com/GlebRadaev/seva/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	RegisterLocal(ctx context.Context, name, email, phone, password string) (*domain.User, error)
	AuthenticateLocal(ctx context.Context, phone, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type OTPService interface {
	Issue(ctx context.Context, phone string) error
	Verify(ctx context.Context, phone, code string) (*domain.User, error)
}

type OAuthService interface {
	Begin(ctx context.Context) (string, error)
	Complete(ctx context.Context, state, code string) (string, error)
}

type AuthHandler struct {
	authService  Service
	otpService   OTPService
	oauthService OAuthService
	clientURL    string
}

func New(authService Service, otpService OTPService, oauthService OAuthService, clientURL string) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		otpService:   otpService,
		oauthService: oauthService,
		clientURL:    clientURL,
	}
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, code int, user *domain.User) {
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, code, dto.AuthResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a local account with name, email, phone and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input or user already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.RegisterLocal(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with phone and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid credentials"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.AuthenticateLocal(r.Context(), req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid credentials")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

// SendOTP godoc
//
//	@Summary		Send a login OTP
//	@Description	Send a 6-digit code by SMS to a registered phone. One code per minute.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendOTPRequestDTO	true	"Phone number"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid phone number"
//	@Failure		404		{object}	utils.Response	"Phone not registered"
//	@Failure		429		{object}	utils.Response	"Requested too soon"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SendOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.otpService.Issue(r.Context(), req.Contact); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid mobile number format")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Mobile number not registered")
		case errors.Is(err, domain.ErrRateLimited):
			utils.RespondWithError(w, http.StatusTooManyRequests, "Please wait before requesting another OTP")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send OTP")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "OTP sent successfully"})
}

// VerifyOTP godoc
//
//	@Summary		Log in with an OTP
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyOTPRequestDTO	true	"Phone number and code"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or expired OTP"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.otpService.Verify(r.Context(), req.Contact, req.OTP)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOTP) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "OTP verification failed")
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

// GoogleLogin godoc
//
//	@Summary	Start Google sign-in
//	@Tags		Auth
//	@Success	302
//	@Router		/api/auth/google [get]
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	target, err := h.oauthService.Begin(r.Context())
	if err != nil {
		logger.L(r.Context()).Error("can't start google sign-in", zap.Error(err))
		http.Redirect(w, r, h.clientURL+"/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// GoogleCallback godoc
//
//	@Summary		Finish Google sign-in
//	@Description	Redirects to the client with the session token, or to the login page on failure.
//	@Tags			Auth
//	@Param			state	query	string	true	"OAuth state"
//	@Param			code	query	string	true	"Authorization code"
//	@Success		302
//	@Router			/api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token, err := h.oauthService.Complete(r.Context(), q.Get("state"), q.Get("code"))
	if err != nil {
		http.Redirect(w, r, h.clientURL+"/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, h.clientURL+"/auth-success?token="+url.QueryEscape(token), http.StatusFound)
}
