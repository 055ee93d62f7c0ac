package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"shipping/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	TTL() time.Duration
	Do(context.Context) error
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

func New(log handlerLogger, tasks ...Task) *Worker {
	return &Worker{
		log:   log,
		tasks: tasks,
	}
}

// Start прогревает все задачи синхронно и запускает их по тикеру до отмены ctx.
// Ошибка или паника на прогреве возвращается, фон в этом случае не стартует.
func (w *Worker) Start(ctx context.Context) error {
	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		initGroup.Go(func() error {
			w.log.Info("initializing task", logger.NewField("task", task.Info()))
			return w.safeDo(initCtx, task)
		})
	}
	if err := initGroup.Wait(); err != nil {
		return fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range w.tasks {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.run(ctx, task)
		}()
	}
	return nil
}

// Wait ждет остановки всех задач после отмены контекста Start.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("task stopped", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panic: %v", task.Info(), r)
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()
	return task.Do(ctx)
}
