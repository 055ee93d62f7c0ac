package status_get

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"shipping/internal/wire"
	"shipping/pkg/logger"
)

const healthStatusStopping = "stopping"

// Handler отдает корневой ключ реплики: клиент локальной сети забирает его до первого вызова.
type Handler struct {
	log            handlerLogger
	rootKey        []byte
	implVersion    string
	isShuttingDown *atomic.Bool
}

func New(log handlerLogger, rootKey []byte, implVersion string, isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		log:            log,
		rootKey:        rootKey,
		implVersion:    implVersion,
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := wire.HealthStatusHealthy
	if h.isShuttingDown.Load() {
		health = healthStatusStopping
	}

	res := wire.StatusResponse{
		RootKey:             h.rootKey,
		ImplVersion:         h.implVersion,
		ReplicaHealthStatus: health,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
