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

func (arm *AdminRoutesManager) ListAllBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := arm.catalogService.GetAllBrands(r.Context())
	if err != nil {
		arm.logger.Error("Failed to fetch brands", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch brands"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"brands": brands,
		}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) CreateBrand(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Brand](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the brand information and try again"), gecho.Send())
		return
	}

	newBrand, err := arm.catalogService.CreateBrand(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("A brand with this name already exists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create brand", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(newBrand),
		gecho.WithMessage("Brand created successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid brand ID"), gecho.Send())
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		arm.logger.Debug("Failed to extract body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the brand information and try again"), gecho.Send())
		return
	}

	if err := arm.catalogService.UpdateBrand(r.Context(), id, updates); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Brand not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update brand", gecho.Field("error", err), gecho.Field("brand_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Brand updated successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid brand ID"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteBrand(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Brand not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete brand", gecho.Field("error", err), gecho.Field("brand_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Brand deleted successfully"),
		gecho.Send(),
	)
}
