package ingress_auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"shipping/internal/pkg/identity"
	"shipping/pkg/logger"
)

const bearerPrefix = "Bearer "

type Config struct {
	// RequireSignature запрещает анонимные запросы (изменяющие вызовы).
	RequireSignature bool
	// Nonces nil отключает защиту от повторов (query можно повторять).
	Nonces NonceStore
}

func Middleware(log handlerLogger, verifier Verifier, cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if cfg.RequireSignature {
					writeError(w, log, http.StatusUnauthorized, "signed envelope required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || token == "" {
				writeError(w, log, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			verified, err := verifier.Verify(token)
			if err != nil {
				log.Warn("envelope rejected",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				status := http.StatusUnauthorized
				if errors.Is(err, identity.ErrPrincipalMismatch) {
					status = http.StatusForbidden
				}
				writeError(w, log, status, "invalid envelope")
				return
			}

			if method := mux.Vars(r)["method"]; method != verified.Method {
				writeError(w, log, http.StatusForbidden, "envelope signed for another method")
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, log, http.StatusBadRequest, "read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if identity.ArgsHash(body) != verified.ArgsHash {
				log.Warn("envelope args mismatch",
					logger.NewField("principal", verified.Sender.String()),
					logger.NewField("method", verified.Method),
				)
				writeError(w, log, http.StatusForbidden, "envelope signed for other arguments")
				return
			}

			if cfg.Nonces != nil {
				fresh, err := cfg.Nonces.Claim(r.Context(), verified.Nonce, time.Until(verified.ExpiresAt))
				if err != nil {
					log.Error("nonce claim failed",
						logger.NewField("principal", verified.Sender.String()),
						logger.NewField("error", err),
					)
					writeError(w, log, http.StatusServiceUnavailable, "replay guard unavailable")
					return
				}
				if !fresh {
					log.Warn("replayed envelope",
						logger.NewField("principal", verified.Sender.String()),
						logger.NewField("nonce", verified.Nonce),
					)
					writeError(w, log, http.StatusConflict, "envelope already used")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), verified.Sender)))
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
