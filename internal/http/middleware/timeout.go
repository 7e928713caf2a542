package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrRequestTimeout - причина отмены контекста запроса по истечении Timeout.
// Достаётся через context.Cause.
var ErrRequestTimeout = errors.New("request timeout exceeded")

// Timeout ограничивает обработку запроса сроком d: дальше контекст отменяется,
// и незавершённый запрос к API поиска превращается в FetchFailure.
// Более ранний дедлайн родительского контекста остаётся в силе. d <= 0 отключает ограничение.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeoutCause(r.Context(), d, ErrRequestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
