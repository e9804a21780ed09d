package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions once, in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []namedFunc
	logger Logger
	err    error
}

var globalCloser = New()

func New() *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: nopLogger{},
	}
}

func AddNamed(name string, fn func(context.Context) error) {
	globalCloser.AddNamed(name, fn)
}

func CloseAll(ctx context.Context) error {
	return globalCloser.CloseAll(ctx)
}

func SetLogger(l Logger) {
	globalCloser.SetLogger(l)
}

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is safe to call several times and from several goroutines. The first call
// starts closing with its ctx; every call waits for the result or for its own ctx.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.once.Do(func() {
		go c.closeAll(ctx)
	})

	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Closer) closeAll(ctx context.Context) {
	defer close(c.done)

	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	log := c.logger
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		start := time.Now()

		log.Info(ctx, "closing", zap.String("name", f.name))
		if err := f.fn(ctx); err != nil {
			log.Error(ctx, "close failed", zap.String("name", f.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.Info(ctx, "closed",
			zap.String("name", f.name),
			zap.Duration("took", time.Since(start)),
		)
	}

	c.err = errors.Join(errs...)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
