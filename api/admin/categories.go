package admin

import (
	"encoding/json"
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) ListAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := arm.catalogService.GetAllCategories(r.Context())
	if err != nil {
		arm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch categories"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Category](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.Send())
		return
	}

	newCategory, err := arm.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("A category with this slug already exists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create category", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(newCategory),
		gecho.WithMessage("Category created successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category ID"), gecho.Send())
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		arm.logger.Debug("Failed to extract body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.Send())
		return
	}

	if err := arm.catalogService.UpdateCategory(r.Context(), id, updates); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update category", gecho.Field("error", err), gecho.Field("category_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category ID"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteCategory(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("category_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted successfully"),
		gecho.Send(),
	)
}
