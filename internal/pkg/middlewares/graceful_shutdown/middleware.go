package graceful_shutdown

import (
	"net/http"
	"sync/atomic"
)

// Middleware после начала остановки отвечает 503 и закрывает keep-alive соединения,
// чтобы клиенты переподключились к живой реплике.
func Middleware(isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				http.Error(w, "replica is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
