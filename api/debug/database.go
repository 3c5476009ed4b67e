package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/database"
)

type tableCount struct {
	Table string `json:"table" bun:"table_name"`
	Rows  int    `json:"rows" bun:"row_count"`
}

// DatabaseStats reports row counts for the catalog tables. Debug-only, so a
// full count per table is acceptable.
func (drm *DebugRoutesManager) DatabaseStats(w http.ResponseWriter, r *http.Request) {
	const query = `
		SELECT 'products' AS table_name, count(*) AS row_count FROM products
		UNION ALL SELECT 'brands', count(*) FROM brands
		UNION ALL SELECT 'categories', count(*) FROM categories
		UNION ALL SELECT 'site_settings', count(*) FROM site_settings
		UNION ALL SELECT 'users', count(*) FROM users
		UNION ALL SELECT 'user_roles', count(*) FROM user_roles`

	counts, err := database.RawQuery[tableCount](drm.db, r.Context(), query)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to collect database stats"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(counts),
		gecho.Send(),
	)
}
