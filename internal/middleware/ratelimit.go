package middleware

import (
	"net/http"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mstdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	smemory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// NewLimiterStore returns a Redis-backed store when rdb is set and an
// in-process store otherwise.
func NewLimiterStore(rdb *redis.Client) (limiter.Store, error) {
	opts := limiter.StoreOptions{
		Prefix:          string(cache.RateLimit),
		MaxRetry:        limiter.DefaultMaxRetry,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}
	if rdb == nil {
		return smemory.NewStoreWithOptions(opts), nil
	}
	return sredis.NewStoreWithOptions(rdb, opts)
}

// RateLimit limits requests per client IP at the given formatted rate,
// e.g. "5-M". The key is the connection's remote address; forwarding
// headers count only after RealIP has applied them. A store failure lets
// the request through.
func RateLimit(store limiter.Store, rate string, log *zap.Logger) (func(http.Handler) http.Handler, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	lim := limiter.New(store, r, limiter.WithTrustForwardHeader(false))

	return func(next http.Handler) http.Handler {
		mw := mstdlib.NewMiddleware(lim,
			mstdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
				log.Warn("rate limit reached", zap.String("ip", ClientIP(r)), zap.String("path", r.URL.Path))
				response.RespondError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
			}),
			mstdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				log.Warn("rate limiter store failed, allowing request", zap.Error(err))
				next.ServeHTTP(w, r)
			}),
		)
		return mw.Handler(next)
	}, nil
}
