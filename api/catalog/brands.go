package catalog

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/handling"
)

// FetchActiveBrands handles GET /brands
func (crm *CatalogRoutesManager) FetchActiveBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := crm.catalogService.GetActiveBrands(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch brands", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"brands": brands,
		}),
		gecho.Send(),
	)
}
