package services

import (
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/storage"
	"github.com/avira1987/remix-of-dxb-dubi/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	ProductService  *ProductService
	CatalogService  *CatalogService
	SettingsService *SettingsService
	UploadService   *UploadService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db, cacheService)
	settingsService := NewSettingsService(logger, db, cacheService)
	uploadService := NewUploadService(logger, cfg, storage.GetInstance(), productService)

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		ProductService:  productService,
		CatalogService:  catalogService,
		SettingsService: settingsService,
		UploadService:   uploadService,
	}
}
