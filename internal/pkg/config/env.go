package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// env читает переменные окружения и копит ошибки разбора и пропущенные ключи,
// чтобы за один запуск показать все проблемы конфигурации.
type env struct {
	errs []error
}

func (e *env) str(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (e *env) int(key string, fallback int) int {
	return parseEnv(e, "int", key, fallback, strconv.Atoi)
}

func (e *env) float(key string, fallback float64) float64 {
	return parseEnv(e, "float", key, fallback, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func (e *env) bool(key string, fallback bool) bool {
	return parseEnv(e, "bool", key, fallback, strconv.ParseBool)
}

func (e *env) duration(key string, fallback time.Duration) time.Duration {
	return parseEnv(e, "duration", key, fallback, time.ParseDuration)
}

// require отмечает ключ обязательным, если значение нулевое.
func require[T comparable](e *env, key string, v T) {
	var zero T
	if v == zero {
		e.errs = append(e.errs, fmt.Errorf("%s is required", key))
	}
}

func (e *env) check(ok bool, msg string) {
	if !ok {
		e.errs = append(e.errs, errors.New(msg))
	}
}

func (e *env) err() error {
	return errors.Join(e.errs...)
}

func parseEnv[T any](e *env, kind, key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid %s format for %s=%q: %w", kind, key, raw, err))
		return fallback
	}
	return v
}
