package handlers

//go:generate mockgen -destination=mock_handlers.go -package=handlers . AuthHandler,CampaignHandler,DonationHandler,PaymentHandler,UserHandler

import (
	"net/http"
	"strings"

	_ "github.com/GlebRadaev/seva/docs"
	authhandlers "github.com/GlebRadaev/seva/internal/handlers/auth"
	campaignhandlers "github.com/GlebRadaev/seva/internal/handlers/campaigns"
	donationhandlers "github.com/GlebRadaev/seva/internal/handlers/donations"
	paymenthandlers "github.com/GlebRadaev/seva/internal/handlers/payment"
	userhandlers "github.com/GlebRadaev/seva/internal/handlers/users"
	"github.com/GlebRadaev/seva/internal/service"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/logger"
	"github.com/GlebRadaev/seva/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	SendOTP(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	GoogleLogin(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	Total(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CampaignHandler CampaignHandler
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler
	UserHandler     UserHandler

	verifier  auth.TokenVerifier
	uploadDir string
}

func New(s *service.Services, clientURL, uploadDir string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, s.OTPService, s.OAuthService, strings.TrimRight(clientURL, "/")),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		UserHandler:     userhandlers.New(s.UserService),
		verifier:        s.TokenVerifier,
		uploadDir:       uploadDir,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		logger.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Seva backend is running!"))
	})
	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.uploadDir != "" {
		r.Handle(storage.PublicPrefix+"*", http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(h.uploadDir))))
	}

	requireAuth := auth.Middleware(h.verifier)
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/send-otp", h.AuthHandler.SendOTP)
			r.Post("/verify-otp", h.AuthHandler.VerifyOTP)
			r.Get("/google", h.AuthHandler.GoogleLogin)
			r.Get("/google/callback", h.AuthHandler.GoogleCallback)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.CampaignHandler.List)
			r.Get("/{id}", h.CampaignHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.CampaignHandler.Create)
				r.Get("/my-campaigns", h.CampaignHandler.ListMine)
				r.Put("/{id}", h.CampaignHandler.Update)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", h.DonationHandler.List)
			r.Post("/donate", h.DonationHandler.Donate)
			r.Get("/total/{campaignId}", h.DonationHandler.Total)
		})

		r.Post("/payment/create-order", h.PaymentHandler.CreateOrder)

		r.Route("/users", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/profile", h.UserHandler.GetProfile)
			r.Put("/profile", h.UserHandler.UpdateProfile)
		})
	})

	return r
}
