package rate_limiter

import "shipping/pkg/logger"

// Limiter подходит *rate.Limiter.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
