package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/database"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/google/uuid"
)

type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// fallbackCategories keeps the storefront gateway rendering when the
// database is unreachable. IDs are nil so nothing downstream mistakes them
// for persisted rows.
var fallbackCategories = []tables.Category{
	{Name: "Watches", Slug: "watches", SortOrder: 1, IsActive: true},
	{Name: "Bags", Slug: "bags", SortOrder: 2, IsActive: true},
	{Name: "Perfumes", Slug: "perfumes", SortOrder: 3, IsActive: true},
	{Name: "Sunglasses", Slug: "sunglasses", SortOrder: 4, IsActive: true},
}

// GetGatewayCategories returns the active top-level categories ordered for
// the storefront gateway. Database failures fall back to a static set so the
// gateway never renders empty.
func (cs *CatalogService) GetGatewayCategories(ctx context.Context) []tables.Category {
	categories, err := database.Query[tables.Category](cs.db).
		Where("is_active", true).
		WhereNull("parent_id").
		OrderBy("sort_order", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Warn("Falling back to static categories", gecho.Field("error", err))
		return fallbackCategories
	}

	return categories
}

// GetChildCategories returns the active sub-categories of a parent, ordered
// by sort order
func (cs *CatalogService) GetChildCategories(ctx context.Context, parentID uuid.UUID) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		Where("parent_id", parentID).
		Where("is_active", true).
		OrderBy("sort_order", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch child categories", gecho.Field("error", err), gecho.Field("parent_id", parentID))
		return nil, fmt.Errorf("failed to fetch child categories: %w", err)
	}

	return categories, nil
}

// GetAllCategories returns every category for the back-office list, ordered
// by sort order
func (cs *CatalogService) GetAllCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("sort_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// GetCategoryBySlug resolves a category for storefront navigation
func (cs *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("slug", slug).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch category by slug", gecho.Field("error", err), gecho.Field("slug", slug))
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}

	return category, nil
}

// CreateCategory inserts a category; an empty slug derives from the name
func (cs *CatalogService) CreateCategory(ctx context.Context, category *tables.Category) (*tables.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Slug == "" {
		category.Slug = lib.MakeSlug(category.Name)
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	category, err := database.Create(cs.db, ctx, category)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			cs.logger.Warn("Category creation failed - duplicate slug", gecho.Field("slug", category.Slug))
			return nil, mappedErr
		}
		cs.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("name", category.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategory applies a partial update; nil map entries never occur since
// the handler builds the map from provided fields only
func (cs *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.Category](cs.db, ctx, id, updates)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	return nil
}

// DeleteCategory removes a category. Products keep their category_id as a
// dangling weak reference; the storefront simply stops resolving it.
func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	rows, err := database.DeleteByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	return nil
}

// DashboardStats are the entity counts shown on the back-office landing page
type DashboardStats struct {
	Products       int `json:"products_count"`
	ActiveProducts int `json:"active_products"`
	Brands         int `json:"brands_count"`
	Categories     int `json:"categories_count"`
}

// GetDashboardStats counts the catalog entities for the admin dashboard
func (cs *CatalogService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Products, err = database.Query[tables.Product](cs.db).Count(ctx); err != nil {
		cs.logger.Error("Failed to count products", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.ActiveProducts, err = database.Query[tables.Product](cs.db).Where("is_active", true).Count(ctx); err != nil {
		cs.logger.Error("Failed to count active products", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to count active products: %w", err)
	}
	if stats.Brands, err = database.Query[tables.Brand](cs.db).Count(ctx); err != nil {
		cs.logger.Error("Failed to count brands", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}
	if stats.Categories, err = database.Query[tables.Category](cs.db).Count(ctx); err != nil {
		cs.logger.Error("Failed to count categories", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return stats, nil
}

// fallbackBrands mirrors the static category set: shown when the brand grid
// cannot be read, never persisted.
var fallbackBrands = []tables.Brand{
	{Name: "Rolex", IsActive: true},
	{Name: "Louis Vuitton", IsActive: true},
	{Name: "Gucci", IsActive: true},
	{Name: "Dior", IsActive: true},
}

// GetActiveBrands returns the brand grid for the storefront. Database
// failures fall back to a static set so the grid never renders empty.
func (cs *CatalogService) GetActiveBrands(ctx context.Context) ([]tables.Brand, error) {
	brands, err := database.Query[tables.Brand](cs.db).
		Where("is_active", true).
		OrderBy("name", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Warn("Falling back to static brands", gecho.Field("error", err))
		return fallbackBrands, nil
	}

	return brands, nil
}

// GetAllBrands returns every brand for the back-office list
func (cs *CatalogService) GetAllBrands(ctx context.Context) ([]tables.Brand, error) {
	brands, err := database.Query[tables.Brand](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch brands", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return brands, nil
}

// GetBrandByID resolves a single brand, used on the product detail page
func (cs *CatalogService) GetBrandByID(ctx context.Context, id uuid.UUID) (*tables.Brand, error) {
	brand, err := database.FindByID[tables.Brand](cs.db, ctx, id)
	if err != nil {
		cs.logger.Error("Failed to fetch brand", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to fetch brand: %w", err)
	}
	if brand == nil {
		return nil, lib.ErrNotFound
	}

	return brand, nil
}

// CreateBrand inserts a brand
func (cs *CatalogService) CreateBrand(ctx context.Context, brand *tables.Brand) (*tables.Brand, error) {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	now := time.Now()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	brand, err := database.Create(cs.db, ctx, brand)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			cs.logger.Warn("Brand creation failed - duplicate name", gecho.Field("name", brand.Name))
			return nil, mappedErr
		}
		cs.logger.Error("Failed to create brand", gecho.Field("error", err), gecho.Field("name", brand.Name))
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

// UpdateBrand applies a partial update
func (cs *CatalogService) UpdateBrand(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.Brand](cs.db, ctx, id, updates)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	return nil
}

// DeleteBrand removes a brand; products keep a dangling brand_id
func (cs *CatalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	rows, err := database.DeleteByID[tables.Brand](cs.db, ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	return nil
}
