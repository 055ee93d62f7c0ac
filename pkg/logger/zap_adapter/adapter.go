package zap_adapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"shipping/pkg/logger"
)

type options struct {
	level  string
	output string
}

type Option func(*options)

// WithLevel задает уровень логирования ("debug", "info", "warn", "error").
// Пустая или невалидная строка оставляет info.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithStderr отправляет все логи в stderr, stdout остается под вывод CLI.
func WithStderr() Option {
	return func(o *options) {
		o.output = "stderr"
	}
}

type ZapAdapter struct {
	logger *zap.Logger
}

func NewZapAdapter(opts ...Option) (*ZapAdapter, error) {
	o := options{output: "stdout"}
	for _, opt := range opts {
		opt(&o)
	}

	config := zap.NewProductionConfig()

	config.OutputPaths = []string{o.output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	if o.level != "" {
		if lvl, err := zapcore.ParseLevel(o.level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{logger: zapLogger}, nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{
		logger: z.logger.With(convertFields(fields)...),
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			zapFields = append(zapFields, zap.NamedError(f.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
