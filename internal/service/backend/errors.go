package backend

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
