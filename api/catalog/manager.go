package catalog

import (
	"github.com/avira1987/remix-of-dxb-dubi/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CatalogRoutesManager serves the public storefront: category gateway,
// brands, product grid and detail, and the out-of-band order links.
type CatalogRoutesManager struct {
	logger          *gecho.Logger
	productService  *services.ProductService
	catalogService  *services.CatalogService
	settingsService *services.SettingsService
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	catalogService *services.CatalogService,
	settingsService *services.SettingsService,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:          logger,
		productService:  productService,
		catalogService:  catalogService,
		settingsService: settingsService,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.FetchGatewayCategories)
	r.Get("/categories/{slug}", crm.FetchCategoryBySlug)
	r.Get("/categories/{id}/children", crm.FetchChildCategories)

	r.Get("/brands", crm.FetchActiveBrands)

	r.Get("/products", crm.FetchActiveProducts)
	r.Get("/products/bestsellers", crm.FetchBestsellers)
	r.Get("/products/{id}", crm.FetchProductByID)
	r.Get("/products/slug/{slug}", crm.FetchProductBySlug)
	r.Get("/products/{id}/contact", crm.FetchContactLinks)

	r.Get("/settings", crm.FetchSettings)
}
