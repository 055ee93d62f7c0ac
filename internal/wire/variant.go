package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"shipping/internal/entities"
)

// Variant тег перечисления на проводе: объект с единственным ключом и пустым значением,
// {"InTransit":null}.
type Variant string

func (v Variant) MarshalJSON() ([]byte, error) {
	if v == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrInvalidVariant)
	}
	return json.Marshal(map[string]*struct{}{string(v): nil})
}

func (v *Variant) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVariant, err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: expected exactly one tag, got %d", ErrInvalidVariant, len(raw))
	}

	for tag, payload := range raw {
		if !isEmptyMarker(payload) {
			return fmt.Errorf("%w: tag %q carries a payload", ErrInvalidVariant, tag)
		}
		*v = Variant(tag)
	}
	return nil
}

func isEmptyMarker(payload json.RawMessage) bool {
	p := bytes.TrimSpace(payload)
	return len(p) == 0 || bytes.Equal(p, []byte("null")) || bytes.Equal(p, []byte("{}"))
}

type enum interface {
	~string
	Valid() bool
}

func encodeEnum[T enum](value T) (Variant, error) {
	if !value.Valid() {
		return "", fmt.Errorf("%w: unknown tag %q", ErrInvalidVariant, string(value))
	}
	return Variant(value), nil
}

func decodeEnum[T enum](v Variant) (T, error) {
	value := T(v)
	if !value.Valid() {
		var zero T
		return zero, fmt.Errorf("%w: unknown tag %q", ErrInvalidVariant, string(v))
	}
	return value, nil
}

func EncodeShipmentStatus(s entities.ShipmentStatus) (Variant, error) {
	return encodeEnum(s)
}

func DecodeShipmentStatus(v Variant) (entities.ShipmentStatus, error) {
	return decodeEnum[entities.ShipmentStatus](v)
}

func EncodeUserType(t entities.UserType) (Variant, error) {
	return encodeEnum(t)
}

func DecodeUserType(v Variant) (entities.UserType, error) {
	return decodeEnum[entities.UserType](v)
}

func EncodePaymentStatus(s entities.PaymentStatus) (Variant, error) {
	return encodeEnum(s)
}

func DecodePaymentStatus(v Variant) (entities.PaymentStatus, error) {
	return decodeEnum[entities.PaymentStatus](v)
}

func EncodeReturnStatus(s entities.ReturnStatus) (Variant, error) {
	return encodeEnum(s)
}

func DecodeReturnStatus(v Variant) (entities.ReturnStatus, error) {
	return decodeEnum[entities.ReturnStatus](v)
}
