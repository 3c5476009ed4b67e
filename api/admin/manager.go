package admin

import (
	"github.com/avira1987/remix-of-dxb-dubi/api/middleware"
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	productService  *services.ProductService
	catalogService  *services.CatalogService
	settingsService *services.SettingsService
	uploadService   *services.UploadService
	mw              *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	productService *services.ProductService,
	catalogService *services.CatalogService,
	settingsService *services.SettingsService,
	uploadService *services.UploadService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:          logger,
		cfg:             cfg,
		productService:  productService,
		catalogService:  catalogService,
		settingsService: settingsService,
		uploadService:   uploadService,
		mw:              mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)
		r.Use(arm.mw.AdminAuthMiddleware)

		r.Get("/dashboard", arm.GetDashboard)
		r.Get("/products", arm.ListAllProducts)
		r.Get("/brands", arm.ListAllBrands)
		r.Get("/categories", arm.ListAllCategories)
		r.Get("/settings", arm.ListAllSettings)

		// Mutations behind CSRF
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.CSRFMiddleware())

			r.Post("/products", arm.CreateProduct)
			r.Put("/products/{id}", arm.UpdateProduct)
			r.Delete("/products/{id}", arm.DeleteProduct)
			r.Post("/products/bulk-upload", arm.BulkUploadProducts)

			r.Post("/brands", arm.CreateBrand)
			r.Put("/brands/{id}", arm.UpdateBrand)
			r.Delete("/brands/{id}", arm.DeleteBrand)

			r.Post("/categories", arm.CreateCategory)
			r.Put("/categories/{id}", arm.UpdateCategory)
			r.Delete("/categories/{id}", arm.DeleteCategory)

			r.Put("/settings/{key}", arm.UpdateSetting)
		})
	})
}
