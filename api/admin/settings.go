package admin

import (
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type updateSettingRequest struct {
	Value string `json:"value" validate:"max=2048"`
}

// ListAllSettings handles GET /admin/settings, grouped by the category tag
// the back-office renders sections from
func (arm *AdminRoutesManager) ListAllSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := arm.settingsService.GetAllSettings(r.Context())
	if err != nil {
		arm.logger.Error("Failed to fetch settings", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch settings"), gecho.Send())
		return
	}

	grouped := make(map[string][]tables.SiteSetting)
	for _, setting := range settings {
		grouped[setting.Category] = append(grouped[setting.Category], setting)
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"settings": grouped,
		}),
		gecho.Send(),
	)
}

// UpdateSetting handles PUT /admin/settings/{key}. The key set is fixed at
// seed time; unknown keys come back as 404.
func (arm *AdminRoutesManager) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		gecho.BadRequest(w, gecho.WithMessage("Setting key is required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[updateSettingRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the setting value and try again"), gecho.Send())
		return
	}

	setting, err := arm.settingsService.UpdateSetting(r.Context(), key, body.Value)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Setting not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update setting", gecho.Field("error", err), gecho.Field("key", key))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update setting. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Setting updated successfully"),
		gecho.WithData(map[string]any{
			"setting": setting,
		}),
		gecho.Send(),
	)
}
