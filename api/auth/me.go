package auth

import (
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/lib"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the signed-in user plus their resolved admin flag. The
// flag comes from the user_roles table at request time, never from the token.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		arm.logger.Warn("Failed to parse access token", gecho.Field("error", err))
		gecho.Success(w, gecho.WithMessage("Invalid access token"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("User not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to fetch user", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch user"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user":     user,
			"is_admin": arm.authService.IsAdmin(r.Context(), user.Id),
		}),
		gecho.Send(),
	)
}
