package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetDashboard handles GET /admin/dashboard: the entity counts the
// back-office landing page renders its stat cards from
func (arm *AdminRoutesManager) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := arm.catalogService.GetDashboardStats(r.Context())
	if err != nil {
		arm.logger.Error("Failed to fetch dashboard stats", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch dashboard stats"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"stats": stats,
		}),
		gecho.Send(),
	)
}
