package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avira1987/remix-of-dxb-dubi/api/middleware"
	"github.com/avira1987/remix-of-dxb-dubi/config"
	"github.com/avira1987/remix-of-dxb-dubi/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// The dashboard lives under the admin subtree and sits behind the same auth
// gate as the rest of the back-office: present, but unreachable without a
// session.
func TestDashboardRouteIsRegisteredAndGated(t *testing.T) {
	cfg := config.GetConfig()
	logger := gecho.NewDefaultLogger()

	authService := services.NewAuthService(cfg, logger, nil)
	cacheService := services.NewCacheService(logger, cfg)
	mw := middleware.NewMiddleware(cfg, logger, authService, cacheService)

	arm := NewAdminRoutesManager(logger, cfg, nil, nil, nil, nil, mw)
	router := chi.NewRouter()
	arm.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/nonexistent", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
