package catalog

import (
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchGatewayCategories handles GET /categories, the storefront entry point.
// The service falls back to a static category set on database failure, so
// this endpoint never errors.
func (crm *CatalogRoutesManager) FetchGatewayCategories(w http.ResponseWriter, r *http.Request) {
	categories := crm.catalogService.GetGatewayCategories(r.Context())

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}

// FetchCategoryBySlug handles GET /categories/{slug}
func (crm *CatalogRoutesManager) FetchCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w, gecho.WithMessage("Category slug is required"), gecho.Send())
		return
	}

	category, err := crm.catalogService.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		crm.logger.Error("Failed to fetch category", gecho.Field("error", err), gecho.Field("slug", slug))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch category"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"category": category,
		}),
		gecho.Send(),
	)
}

// FetchChildCategories handles GET /categories/{id}/children
func (crm *CatalogRoutesManager) FetchChildCategories(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		crm.logger.Warn("Invalid category ID format", gecho.Field("id", idStr), gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid category ID"), gecho.Send())
		return
	}

	children, err := crm.catalogService.GetChildCategories(r.Context(), id)
	if err != nil {
		crm.logger.Error("Failed to fetch child categories", gecho.Field("error", err), gecho.Field("parent_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch categories"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": children,
		}),
		gecho.Send(),
	)
}
