package catalog

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/handling"
)

// FetchSettings handles GET /settings. Site settings are public; the
// storefront reads the logo, description and social links from here.
func (crm *CatalogRoutesManager) FetchSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := crm.settingsService.GetSettingsMap(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch site settings", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"settings": settings,
		}),
		gecho.Send(),
	)
}
