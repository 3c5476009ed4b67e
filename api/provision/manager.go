package provision

import (
	"time"

	"github.com/avira1987/remix-of-dxb-dubi/api/middleware"
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ProvisionRoutesManager exposes the one-shot admin bootstrap endpoint.
type ProvisionRoutesManager struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	authService *services.AuthService
	mw          *middleware.Middleware
}

func NewProvisionRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	authService *services.AuthService,
	mw *middleware.Middleware,
) *ProvisionRoutesManager {
	return &ProvisionRoutesManager{
		logger:      logger,
		cfg:         cfg,
		authService: authService,
		mw:          mw,
	}
}

func (prm *ProvisionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/provision", func(r chi.Router) {
		// Blocks on cache failure; a bootstrap endpoint must never be
		// hammerable
		r.Use(prm.mw.StrictRateLimitMiddleware(5, time.Minute))
		r.Post("/admin-user", prm.EnsureAdminUser)
	})
}
