package restapi

import (
	"net/http"
	"time"

	"github.com/LHMTR/haruto-information/internal/app"
)

type RestAPI struct {
	*app.Application
	limiter     *RateLimitMiddleware
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	limiter := newRateLimiter(app.Config.RateLimit, time.Second)
	return &RestAPI{
		Application: app,
		limiter:     limiter,
		rateLimiter: limiter.rateLimitHandler,
	}
}

// Close stops the rate limiter's background cleanup.
func (api *RestAPI) Close() {
	api.limiter.Stop()
}
