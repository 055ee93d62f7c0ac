package wallet

import "errors"

var (
	ErrNotConnected = errors.New("wallet not connected")
	ErrNoAccounts   = errors.New("provider returned no accounts")
)
