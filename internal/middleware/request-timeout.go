package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeoutMiddleware ограничивает время жизни контекста запроса значением d.
//
// Обработчик не прерывается принудительно: срок видят только те слои,
// которые ждут на ctx.Done() (в tasks это задержка create в TaskStore).
// d <= 0 отключает ограничение, запрос проходит с исходным контекстом.
func RequestTimeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
