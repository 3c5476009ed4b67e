package provision

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// EnsureAdminUser handles POST /provision/admin-user. It idempotently creates
// the configured admin account and grants it the admin role. Credentials come
// from server configuration, never from the request body, so repeated calls
// cannot be used to plant a different account.
func (prm *ProvisionRoutesManager) EnsureAdminUser(w http.ResponseWriter, r *http.Request) {
	user, created, err := prm.authService.EnsureAdmin(r.Context())
	if err != nil {
		prm.logger.Error("Admin provisioning failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to provision admin user"),
			gecho.Send(),
		)
		return
	}

	if !created {
		prm.logger.Info("Admin user already provisioned", gecho.Field("email", user.Email))
		gecho.Success(w,
			gecho.WithMessage("Admin user already exists"),
			gecho.WithData(map[string]any{
				"email": user.Email,
			}),
			gecho.Send(),
		)
		return
	}

	prm.logger.Info("Admin user provisioned", gecho.Field("email", user.Email))

	// The configured password is echoed once at creation so the operator can
	// hand it over; it is never stored in plain text
	gecho.Success(w,
		gecho.WithMessage("Admin user created"),
		gecho.WithData(map[string]any{
			"email":    user.Email,
			"password": prm.cfg.Provision.AdminPassword,
		}),
		gecho.Send(),
	)
}
