package debug

import (
	"net"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// RateLimitStatus reports the current rate limit counter for an IP and
// endpoint class. Defaults to the caller's own address.
func (drm *DebugRoutesManager) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ip = host
		} else {
			ip = r.RemoteAddr
		}
	}

	endpoint := r.URL.Query().Get("endpoint")
	if endpoint == "" {
		endpoint = "general"
	}

	status, err := drm.cacheService.GetRateLimitStatus(ip, endpoint)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to read rate limit status"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"ip":       ip,
			"endpoint": endpoint,
			"status":   status,
		}),
		gecho.Send(),
	)
}
