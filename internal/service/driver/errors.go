package driver

import "errors"

var ErrDriverAlreadyRegistered = errors.New("Driver already registered")
