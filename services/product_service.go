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

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	IsActive     *bool                 `json:"is_active,omitempty"`
	IsFeatured   *bool                 `json:"is_featured,omitempty"`
	IsBestseller *bool                 `json:"is_bestseller,omitempty"`
	Status       *tables.ProductStatus `json:"status,omitempty"`
	BrandID      *uuid.UUID            `json:"brand_id,omitempty"`
	CategoryID   *uuid.UUID            `json:"category_id,omitempty"`
	MinPrice     *uint64               `json:"min_price,omitempty"` // in cents
	MaxPrice     *uint64               `json:"max_price,omitempty"` // in cents
	SearchTerm   string                `json:"search_term,omitempty"`

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, updated_at, price, name
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Performance
	Timeout time.Duration `json:"-"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	Filters    ProductListOptions  `json:"filters"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves products with comprehensive filtering, pagination, and error handling
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		ps.logger.Error("Invalid product list options", gecho.Field("error", err), gecho.Field("options", opts))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("page", result.Pagination.Page),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		Filters:    *opts,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetProductByID retrieves a single product by ID with cache-aside
func (ps *ProductService) GetProductByID(ctx context.Context, id string) (*tables.Product, error) {
	startTime := time.Now()

	cachedProduct, err := ps.cacheService.GetProductByID(id)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cachedProduct != nil {
		ps.logger.Debug("Product retrieved from cache", gecho.Field("id", id), gecho.Field("duration", time.Since(startTime)))
		return cachedProduct, nil
	}

	// Cache miss - fetch from database
	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		ps.logger.Warn("Product not found", gecho.Field("id", id))
		return nil, lib.ErrNotFound
	}

	// Cache the product asynchronously
	go func() {
		if err := ps.cacheService.SetProductByID(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
		}
	}()

	return product, nil
}

// GetProductBySlug retrieves a single product by its URL slug
func (ps *ProductService) GetProductBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("slug", slug).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by slug", gecho.Field("slug", slug), gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		return nil, lib.ErrNotFound
	}

	return product, nil
}

// GetActiveProducts returns the storefront product grid: active products,
// newest first, cached per page
func (ps *ProductService) GetActiveProducts(ctx context.Context, page, pageSize int) (*ProductListResult, error) {
	startTime := time.Now()

	cachedProducts, err := ps.cacheService.GetActiveProductsList(page, pageSize)
	if err != nil {
		ps.logger.Warn("Failed to get active products from cache", gecho.Field("error", err))
	} else if cachedProducts != nil {
		ps.logger.Debug("Active products retrieved from cache",
			gecho.Field("count", len(cachedProducts)),
			gecho.Field("page", page),
			gecho.Field("duration", time.Since(startTime)),
		)

		return &ProductListResult{
			Products: cachedProducts,
			Pagination: database.Pagination{
				Page:     page,
				PageSize: pageSize,
				Total:    len(cachedProducts),
			},
			Filters: ProductListOptions{
				Page:     page,
				PageSize: pageSize,
			},
			QueryTime: time.Since(startTime),
		}, nil
	}

	// Cache miss - fetch from database
	isActive := true
	published := tables.ProductStatusPublished
	opts := &ProductListOptions{
		Page:          page,
		PageSize:      pageSize,
		IsActive:      &isActive,
		Status:        &published,
		SortBy:        "created_at",
		SortDirection: "DESC",
	}

	result, err := ps.GetAllProducts(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Cache the products asynchronously
	go func() {
		if err := ps.cacheService.SetActiveProductsList(page, pageSize, result.Products); err != nil {
			ps.logger.Warn("Failed to cache active products", gecho.Field("error", err))
		}
	}()

	return result, nil
}

// BestsellerProduct is a product card on the bestseller strip with its
// brand name already resolved
type BestsellerProduct struct {
	tables.Product
	BrandName string `json:"brand_name,omitempty"`
}

// GetBestsellers returns the curated bestseller strip: active bestsellers,
// capped at ten, with brand names attached
func (ps *ProductService) GetBestsellers(ctx context.Context) ([]BestsellerProduct, error) {
	cached, err := ps.cacheService.GetBestsellers()
	if err != nil {
		ps.logger.Warn("Failed to get bestsellers from cache", gecho.Field("error", err))
	} else if cached != nil {
		return ps.attachBrandNames(ctx, cached), nil
	}

	products, err := database.Query[tables.Product](ps.db).
		Where("is_bestseller", true).
		Where("is_active", true).
		Where("status", tables.ProductStatusPublished).
		OrderBy("created_at", database.DESC).
		Limit(10).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch bestsellers", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch bestsellers: %w", err)
	}

	go func() {
		if err := ps.cacheService.SetBestsellers(products); err != nil {
			ps.logger.Warn("Failed to cache bestsellers", gecho.Field("error", err))
		}
	}()

	return ps.attachBrandNames(ctx, products), nil
}

// attachBrandNames batch-resolves the distinct brand ids of a product set.
// A failed lookup degrades to cards without brand names, never an error.
func (ps *ProductService) attachBrandNames(ctx context.Context, products []tables.Product) []BestsellerProduct {
	seen := make(map[uuid.UUID]struct{})
	var ids []any
	for _, p := range products {
		if p.BrandID == nil {
			continue
		}
		if _, ok := seen[*p.BrandID]; ok {
			continue
		}
		seen[*p.BrandID] = struct{}{}
		ids = append(ids, *p.BrandID)
	}

	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) > 0 {
		brands, err := database.FindByIDs[tables.Brand](ps.db, ctx, ids)
		if err != nil {
			ps.logger.Warn("Failed to resolve brand names", gecho.Field("error", err))
		} else {
			for _, b := range brands {
				names[b.ID] = b.Name
			}
		}
	}

	items := make([]BestsellerProduct, len(products))
	for i, p := range products {
		items[i] = BestsellerProduct{Product: p}
		if p.BrandID != nil {
			items[i].BrandName = names[*p.BrandID]
		}
	}

	return items
}

// applyDefaultOptions sets default values for unspecified options
func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// validateOptions validates the provided options
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"name":       true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.IsActive != nil {
		query = query.Where("is_active", *opts.IsActive)
	}
	if opts.IsFeatured != nil {
		query = query.Where("is_featured", *opts.IsFeatured)
	}
	if opts.IsBestseller != nil {
		query = query.Where("is_bestseller", *opts.IsBestseller)
	}
	if opts.Status != nil {
		query = query.Where("status", *opts.Status)
	}
	if opts.BrandID != nil {
		query = query.Where("brand_id", *opts.BrandID)
	}
	if opts.CategoryID != nil {
		query = query.Where("category_id", *opts.CategoryID)
	}

	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}

	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(name ILIKE ? OR description ILIKE ?)",
			searchPattern, searchPattern,
		)
	}

	return query
}

// applySorting applies sorting to the query
func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	var direction database.OrderDirection
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	} else {
		direction = database.DESC
	}

	query = query.OrderBy(opts.SortBy, direction)

	// Secondary sort by ID for consistent ordering
	query = query.OrderBy("id", database.ASC)

	return query
}

// CreateProduct inserts a new product. An empty slug derives from the name;
// an empty status defaults to published.
func (ps *ProductService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	startTime := time.Now()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.Slug == "" {
		product.Slug = lib.MakeSlug(product.Name)
	}
	if product.Status == "" {
		product.Status = tables.ProductStatusPublished
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	product, err := database.Create(ps.db, ctx, product)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			ps.logger.Warn("Product creation failed - duplicate slug",
				gecho.Field("slug", product.Slug),
			)
			return nil, mappedErr
		}
		ps.logger.Error("Failed to create product",
			gecho.Field("error", err),
			gecho.Field("product_name", product.Name),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Invalidate product caches asynchronously
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(product.ID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after creation",
				gecho.Field("error", err),
				gecho.Field("product_id", product.ID),
			)
		}
	}()

	ps.logger.Info("Product created successfully",
		gecho.Field("id", product.ID),
		gecho.Field("slug", product.Slug),
		gecho.Field("duration", time.Since(startTime)),
	)
	return product, nil
}

// CreateDraft inserts a placeholder product for a bulk-uploaded image. Drafts
// are inactive with zero price and stock until edited and published.
func (ps *ProductService) CreateDraft(ctx context.Context, name, slug, imageURL string, brandID, categoryID *uuid.UUID) (*tables.Product, error) {
	draft := &tables.Product{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: "Pending details",
		Price:       0,
		ImageURL:    imageURL,
		Images:      []string{imageURL},
		IsActive:    false,
		Status:      tables.ProductStatusDraft,
		BrandID:     brandID,
		CategoryID:  categoryID,
	}

	return ps.CreateProduct(ctx, draft)
}

// UpdateProductRequest carries a partial product update; nil fields are left
// untouched
type UpdateProductRequest struct {
	Name          *string               `json:"name,omitempty"`
	Slug          *string               `json:"slug,omitempty"`
	Description   *string               `json:"description,omitempty"`
	Price         *uint64               `json:"price,omitempty"`
	OriginalPrice *uint64               `json:"original_price,omitempty"`
	ImageURL      *string               `json:"image_url,omitempty"`
	Images        []string              `json:"images,omitempty"`
	IsActive      *bool                 `json:"is_active,omitempty"`
	IsFeatured    *bool                 `json:"is_featured,omitempty"`
	IsBestseller  *bool                 `json:"is_bestseller,omitempty"`
	StockQuantity *int                  `json:"stock_quantity,omitempty"`
	Status        *tables.ProductStatus `json:"status,omitempty"`
	BrandID       *uuid.UUID            `json:"brand_id,omitempty"`
	CategoryID    *uuid.UUID            `json:"category_id,omitempty"`
}

func (ps *ProductService) UpdateProduct(ctx context.Context, productID uuid.UUID, req *UpdateProductRequest) error {
	updateData := make(map[string]any)

	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.Slug != nil {
		updateData["slug"] = *req.Slug
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}
	if req.Price != nil {
		updateData["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updateData["original_price"] = *req.OriginalPrice
	}
	if req.ImageURL != nil {
		updateData["image_url"] = *req.ImageURL
	}
	if req.Images != nil {
		updateData["images"] = req.Images
	}
	if req.IsActive != nil {
		updateData["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updateData["is_featured"] = *req.IsFeatured
	}
	if req.IsBestseller != nil {
		updateData["is_bestseller"] = *req.IsBestseller
	}
	if req.StockQuantity != nil {
		updateData["stock_quantity"] = *req.StockQuantity
	}
	if req.Status != nil {
		if *req.Status != tables.ProductStatusDraft && *req.Status != tables.ProductStatusPublished {
			return fmt.Errorf("invalid status %q", *req.Status)
		}
		updateData["status"] = *req.Status
	}
	if req.BrandID != nil {
		updateData["brand_id"] = *req.BrandID
	}
	if req.CategoryID != nil {
		updateData["category_id"] = *req.CategoryID
	}

	if len(updateData) == 0 {
		return nil
	}

	updateData["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.Product](ps.db, ctx, productID, updateData)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	// Invalidate product caches asynchronously
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after update",
				gecho.Field("error", err),
				gecho.Field("product_id", productID),
			)
		}
	}()

	return nil
}

// DeleteProduct removes a product by ID
func (ps *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	rows, err := database.DeleteByID[tables.Product](ps.db, ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", lib.MapPgError(err))
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after deletion",
				gecho.Field("error", err),
				gecho.Field("product_id", productID),
			)
		}
	}()

	return nil
}
