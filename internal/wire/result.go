package wire

import (
	"encoding/json"
	"fmt"
)

const (
	resultOk  = "Ok"
	resultErr = "Err"
)

// Result ответ изменяющего метода: ровно одно из Ok или Err.
type Result[T any] struct {
	Ok  *T
	Err *string
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Ok: &value}
}

func Err[T any](message string) Result[T] {
	return Result[T]{Err: &message}
}

// IsErr true, если канистра вернула Err.
func (r Result[T]) IsErr() bool {
	return r.Err != nil
}

func (r Result[T]) validate() error {
	if (r.Ok == nil) == (r.Err == nil) {
		return fmt.Errorf("%w: exactly one of Ok and Err must be set", ErrInvalidResult)
	}
	return nil
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	if r.Ok != nil {
		return json.Marshal(map[string]*T{resultOk: r.Ok})
	}
	return json.Marshal(map[string]*string{resultErr: r.Err})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: expected exactly one of Ok and Err, got %d keys", ErrInvalidResult, len(raw))
	}

	var res Result[T]
	switch {
	case raw[resultOk] != nil:
		var value T
		if err := json.Unmarshal(raw[resultOk], &value); err != nil {
			return fmt.Errorf("%w: Ok payload: %w", ErrInvalidResult, err)
		}
		res.Ok = &value
	case raw[resultErr] != nil:
		var message string
		if err := json.Unmarshal(raw[resultErr], &message); err != nil {
			return fmt.Errorf("%w: Err payload: %w", ErrInvalidResult, err)
		}
		res.Err = &message
	default:
		return fmt.Errorf("%w: unknown tag", ErrInvalidResult)
	}

	*r = res
	return nil
}
