package admin

import (
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/handling"
	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListAllProducts handles GET /admin/products. Unlike the storefront grid
// this sees everything: drafts, disabled products, any status filter.
func (arm *AdminRoutesManager) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		arm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := arm.productService.GetAllProducts(r.Context(), opts)
	if err != nil {
		arm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch products"), gecho.Send())
		return
	}

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

func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Product](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product information and try again"), gecho.Send())
		return
	}

	newProduct, err := arm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("A product with this slug already exists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create product. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(newProduct),
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[services.UpdateProductRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product information and try again"), gecho.Send())
		return
	}

	if err := arm.productService.UpdateProduct(r.Context(), id, body); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("product_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update product. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	if err := arm.productService.DeleteProduct(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("product_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete product. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.Send(),
	)
}
