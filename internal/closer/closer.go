package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type namedCloser struct {
	name string
	fn   func(context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = zap.NewNop()
)

func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func AddNamed(name string, fn func(context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs registered closers in reverse registration order.
// Every closer runs even when earlier ones fail.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	toClose := make([]namedCloser, len(closers))
	copy(toClose, closers)
	closers = nil
	mu.Unlock()

	var errs []error
	for i := len(toClose) - 1; i >= 0; i-- {
		c := toClose[i]
		if err := c.fn(ctx); err != nil {
			log.Error("failed to close", zap.String("name", c.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		log.Info("closed", zap.String("name", c.name))
	}

	return errors.Join(errs...)
}
