package identity

import "errors"

var (
	ErrDenied            = errors.New("identity provider: authorization denied")
	ErrNoSession         = errors.New("no stored session")
	ErrSessionExpired    = errors.New("stored session expired")
	ErrInvalidPrincipal  = errors.New("invalid principal")
	ErrInvalidEnvelope   = errors.New("invalid request envelope")
	ErrPrincipalMismatch = errors.New("sender does not match public key")
)
