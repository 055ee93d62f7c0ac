package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Opt опциональное значение на проводе: пустой массив - значения нет,
// массив из одного элемента - значение есть.
type Opt[T any] []T

func Some[T any](value T) Opt[T] {
	return Opt[T]{value}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func OptFromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Opt[T]) IsSome() bool {
	return len(o) == 1
}

// Ptr возвращает копию значения или nil.
func (o Opt[T]) Ptr() *T {
	if len(o) == 0 {
		return nil
	}
	v := o[0]
	return &v
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	switch len(o) {
	case 0:
		return []byte("[]"), nil
	case 1:
		return json.Marshal([]T(o))
	default:
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidOpt, len(o))
	}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOpt, err)
	}
	if len(values) > 1 {
		return fmt.Errorf("%w: %d elements", ErrInvalidOpt, len(values))
	}
	*o = Opt[T](values)
	return nil
}
