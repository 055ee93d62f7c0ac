package wire

import "errors"

var (
	ErrInvalidVariant = errors.New("invalid variant")
	ErrInvalidOpt     = errors.New("invalid optional")
	ErrInvalidResult  = errors.New("invalid result")
	ErrArgsCount      = errors.New("unexpected arguments count")
)
