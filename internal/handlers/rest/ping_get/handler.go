package ping_get

import (
	"encoding/json"
	"net/http"

	"shipping/pkg/logger"
)

type response struct {
	Message    string `json:"message"`
	CanisterID string `json:"canister_id"`
}

type Handler struct {
	log        handlerLogger
	canisterID string
}

func New(log handlerLogger, canisterID string) *Handler {
	return &Handler{
		log:        log,
		canisterID: canisterID,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := response{
		Message:    "pong",
		CanisterID: h.canisterID,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
