package canister_call_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"shipping/internal/pkg/middlewares/ingress_auth"
	"shipping/internal/wire"
	"shipping/pkg/logger"
)

const maxBodyBytes = 2 << 20

// Handler call: изменяющий вызов от подписанного отправителя.
type Handler struct {
	log        handlerLogger
	dispatcher Dispatcher
	canisterID string
}

func New(log handlerLogger, dispatcher Dispatcher, canisterID string) *Handler {
	return &Handler{
		log:        log,
		dispatcher: dispatcher,
		canisterID: canisterID,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if vars["canister_id"] != h.canisterID {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "canister not found"})
		return
	}

	var req wire.Request
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	caller := ingress_auth.Principal(r.Context())
	resp := h.dispatcher.Dispatch(r.Context(), wire.ModeUpdate, vars["method"], caller, req.Args)
	if resp.Status == wire.StatusRejected {
		h.log.Warn("canister call rejected",
			logger.NewField("method", vars["method"]),
			logger.NewField("principal", caller.String()),
			logger.NewField("reject_code", int(resp.RejectCode)),
			logger.NewField("reject_message", resp.RejectMessage),
		)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
