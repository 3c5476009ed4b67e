package catalog

import (
	"net/http"
	"strconv"

	"github.com/avira1987/remix-of-dxb-dubi/handling"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchActiveProducts handles GET /products, the public storefront grid.
// Only active published products are ever visible here; drafts and disabled
// products are admin-only regardless of what filters the client sends.
func (crm *CatalogRoutesManager) FetchActiveProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	// Plain page requests hit the cached path
	if query.Get("brand_id") == "" && query.Get("category_id") == "" && query.Get("search") == "" {
		page := 1
		pageSize := 20

		if pageStr := query.Get("page"); pageStr != "" {
			if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
				page = val
			}
		}
		if pageSizeStr := query.Get("page_size"); pageSizeStr != "" {
			if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
				pageSize = val
			}
		}

		result, err := crm.productService.GetActiveProducts(ctx, page, pageSize)
		if err != nil {
			crm.logger.Error("Failed to fetch active products", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch products"), gecho.Send())
			return
		}

		writeProductList(w, result)
		return
	}

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		crm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	// Forced regardless of client input
	active := true
	published := tables.ProductStatusPublished
	opts.IsActive = &active
	opts.Status = &published

	result, err := crm.productService.GetAllProducts(ctx, opts)
	if err != nil {
		crm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch products"), gecho.Send())
		return
	}

	writeProductList(w, result)
}

// FetchBestsellers handles GET /products/bestsellers
func (crm *CatalogRoutesManager) FetchBestsellers(w http.ResponseWriter, r *http.Request) {
	products, err := crm.productService.GetBestsellers(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch bestsellers", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch bestsellers"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}
func (crm *CatalogRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		crm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr), gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	product, err := crm.productService.GetProductByID(r.Context(), id.String())
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch product"), gecho.Send())
		return
	}

	// Drafts and disabled products are invisible on the storefront
	if !storefrontVisible(product) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/slug/{slug}
func (crm *CatalogRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w, gecho.WithMessage("Product slug is required"), gecho.Send())
		return
	}

	product, err := crm.productService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to fetch product by slug", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch product"), gecho.Send())
		return
	}

	if !storefrontVisible(product) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchContactLinks handles GET /products/{id}/contact. Ordering happens
// out of band over WhatsApp or Instagram; this returns the prefilled links
// for one product.
func (crm *CatalogRoutesManager) FetchContactLinks(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	product, err := crm.productService.GetProductByID(r.Context(), id.String())
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to fetch product for contact links", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch product"), gecho.Send())
		return
	}

	// Same visibility rule as the detail endpoints: a draft must not reveal
	// its existence through its contact links either
	if !storefrontVisible(product) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}

	links, err := crm.settingsService.GetContactLinks(r.Context(), product.Name)
	if err != nil {
		crm.logger.Error("Failed to build contact links", gecho.Field("error", err), gecho.Field("product_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to build contact links"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(links),
		gecho.Send(),
	)
}

// storefrontVisible reports whether a product may appear on any public
// endpoint. Drafts and disabled products exist only for the back-office.
func storefrontVisible(product *tables.Product) bool {
	return product.IsActive && product.Status == tables.ProductStatusPublished
}

func writeProductList(w http.ResponseWriter, result *services.ProductListResult) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"filters":    result.Filters,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}
