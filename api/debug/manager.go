package debug

import (
	"github.com/avira1987/remix-of-dxb-dubi/config"
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/services"

	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	cacheService *services.CacheService
	db           *database.DB
}

func NewDebugRoutesManager(cacheService *services.CacheService, db *database.DB) *DebugRoutesManager {
	return &DebugRoutesManager{
		cacheService: cacheService,
		db:           db,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if !config.IsProduction() {
		r.Route("/debug", func(r chi.Router) {
			r.Get("/cache/stats", drm.CacheStats)
			r.Post("/cache/clear", drm.ClearCache)
			r.Get("/db/stats", drm.DatabaseStats)
			r.Get("/ratelimit", drm.RateLimitStatus)
		})
	}
}
