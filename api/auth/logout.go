package auth

import (
	"net/http"

	"github.com/avira1987/remix-of-dxb-dubi/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r)
	if err != nil {
		gecho.Success(w,
			gecho.WithMessage("No access token found"),
			gecho.Send(),
		)
		return
	}

	claims, err := lib.ParseToken(accessToken, arm.cfg.Auth.AccessTokenSecret)
	if err != nil {
		arm.logger.Error("Failed to parse access token during logout", gecho.Field("error", err))
		gecho.Success(w,
			gecho.WithMessage("Invalid access token"),
			gecho.Send(),
		)
		return
	}

	err = arm.cacheService.BlacklistToken(claims.Jti, claims.Exp)
	if err != nil {
		arm.logger.Error("Failed to blacklist access token during logout", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to logout"),
			gecho.Send(),
		)
		return
	}

	// Also clear user from cache
	if err = arm.cacheService.DeleteUserFromCache(claims.Sub); err != nil {
		arm.logger.Error("Failed to clear user cache during logout", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
	} else {
		arm.logger.Debug("User cache cleared during logout", gecho.Field("user_id", claims.Sub))
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
