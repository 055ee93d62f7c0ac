package wire

import (
	"encoding/json"
	"fmt"
)

const (
	StatusReplied  = "replied"
	StatusRejected = "rejected"

	HealthStatusHealthy = "healthy"
)

// RejectCode коды отказа реплики.
type RejectCode int

const (
	RejectSysFatal           RejectCode = 1
	RejectSysTransient       RejectCode = 2
	RejectDestinationInvalid RejectCode = 3
	RejectCanisterReject     RejectCode = 4
	RejectCanisterError      RejectCode = 5
)

// Request тело query/call запроса: позиционные аргументы метода.
type Request struct {
	Args []json.RawMessage `json:"args"`
}

type Response struct {
	Status        string          `json:"status"`
	Reply         json.RawMessage `json:"reply,omitempty"`
	RejectCode    RejectCode      `json:"reject_code,omitempty"`
	RejectMessage string          `json:"reject_message,omitempty"`
}

func Replied(reply json.RawMessage) Response {
	return Response{Status: StatusReplied, Reply: reply}
}

func Rejected(code RejectCode, message string) Response {
	return Response{Status: StatusRejected, RejectCode: code, RejectMessage: message}
}

// StatusResponse ответ /api/v2/status.
type StatusResponse struct {
	RootKey             []byte `json:"root_key"`
	ImplVersion         string `json:"impl_version"`
	ReplicaHealthStatus string `json:"replica_health_status"`
}

func EncodeArgs(args ...any) ([]json.RawMessage, error) {
	raw := make([]json.RawMessage, 0, len(args))
	for i, arg := range args {
		data, err := json.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("encode arg %d: %w", i, err)
		}
		raw = append(raw, data)
	}
	return raw, nil
}

// DecodeArgs раскладывает позиционные аргументы по out, количество должно совпадать.
func DecodeArgs(raw []json.RawMessage, out ...any) error {
	if len(raw) != len(out) {
		return fmt.Errorf("%w: want %d, got %d", ErrArgsCount, len(out), len(raw))
	}
	for i := range raw {
		if err := json.Unmarshal(raw[i], out[i]); err != nil {
			return fmt.Errorf("decode arg %d: %w", i, err)
		}
	}
	return nil
}
