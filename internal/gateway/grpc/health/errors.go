package health

import "errors"

var ErrNotServing = errors.New("replica is not serving")
