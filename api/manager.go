package api

import (
	"github.com/avira1987/remix-of-dxb-dubi/api/admin"
	"github.com/avira1987/remix-of-dxb-dubi/api/auth"
	"github.com/avira1987/remix-of-dxb-dubi/api/catalog"
	"github.com/avira1987/remix-of-dxb-dubi/api/debug"
	"github.com/avira1987/remix-of-dxb-dubi/api/health"
	"github.com/avira1987/remix-of-dxb-dubi/api/middleware"
	"github.com/avira1987/remix-of-dxb-dubi/api/provision"
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	catalogRoutes   *catalog.CatalogRoutesManager
	healthRoutes    *health.HealthRoutesManager
	authRoutes      *auth.AuthRoutesManager
	adminRoutes     *admin.AdminRoutesManager
	provisionRoutes *provision.ProvisionRoutesManager
	debugRoutes     *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		catalogRoutes:   catalog.NewCatalogRoutesManager(logger, sm.ProductService, sm.CatalogService, sm.SettingsService),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, sm.CacheService, cfg, mw),
		adminRoutes:     admin.NewAdminRoutesManager(logger, cfg, sm.ProductService, sm.CatalogService, sm.SettingsService, sm.UploadService, mw),
		provisionRoutes: provision.NewProvisionRoutesManager(logger, cfg, sm.AuthService, mw),
		debugRoutes:     debug.NewDebugRoutesManager(sm.CacheService, database.GetInstance()),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.catalogRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.provisionRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
