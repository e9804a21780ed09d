package collection

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type Entity interface {
	GetID() string
}

type File[T Entity] interface {
	Path() string
	Load(ctx context.Context) ([]T, bool)
	Save(ctx context.Context, items []T) error
	SaveVersion(ctx context.Context, version uint64, items []T) (bool, error)
}

type Observer interface {
	Mutation(collection, op string)
	Persisted(collection string, took time.Duration, err error)
}

// Collection is an ordered in-memory list of records mirrored to a file.
// Newest records come first. All collections of one store share mu.
type Collection[T Entity] struct {
	name     string
	mu       *sync.RWMutex
	items    []T
	version  uint64
	file     File[T]
	notFound error
	obs      Observer
}

func New[T Entity](
	name string,
	mu *sync.RWMutex,
	file File[T],
	notFound error,
	obs Observer,
) *Collection[T] {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Collection[T]{
		name:     name,
		mu:       mu,
		items:    make([]T, 0),
		file:     file,
		notFound: notFound,
		obs:      obs,
	}
}

func (c *Collection[T]) Name() string { return c.name }

// Load replaces the in-memory records with the file contents.
// A missing or broken file leaves the collection empty.
func (c *Collection[T]) Load(ctx context.Context) bool {
	items, ok := c.file.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !ok {
		c.items = make([]T, 0)
		return false
	}
	c.items = items

	logger.Info(ctx, "collection loaded",
		logger.String("collection", c.name),
		logger.Int("total", len(items)),
	)
	return true
}

func (c *Collection[T]) List(_ context.Context) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, c.notFound
	}

	return c.items[idx], nil
}

func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	const op = "collection.Insert"

	c.mu.Lock()
	if c.indexOf(rec.GetID()) >= 0 {
		c.mu.Unlock()
		return fmt.Errorf("%s: %s %q: %w", op, c.name, rec.GetID(), model.ErrConflict)
	}
	c.items = slices.Insert(c.items, 0, rec)
	snap, ver := c.snapshotLocked()
	c.mu.Unlock()

	c.obs.Mutation(c.name, "insert")
	c.persist(ctx, snap, ver)

	return nil
}

// Update applies mutate to a copy of the record and commits the copy only if mutate succeeds.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (T, error) {
	var zero T

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return zero, c.notFound
	}

	updated := c.items[idx]
	if err := mutate(&updated); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	c.items[idx] = updated
	snap, ver := c.snapshotLocked()
	c.mu.Unlock()

	c.obs.Mutation(c.name, "update")
	c.persist(ctx, snap, ver)

	return updated, nil
}

// Upsert updates the first record accepted by match, or inserts the one built by create.
// Matching and writing happen in one critical section.
func (c *Collection[T]) Upsert(
	ctx context.Context,
	match func(T) bool,
	update func(*T),
	create func() T,
) (T, bool, error) {
	c.mu.Lock()
	idx := slices.IndexFunc(c.items, match)

	var (
		rec     T
		created bool
	)
	if idx >= 0 {
		rec = c.items[idx]
		update(&rec)
		c.items[idx] = rec
	} else {
		rec = create()
		if c.indexOf(rec.GetID()) >= 0 {
			c.mu.Unlock()
			var zero T
			return zero, false, fmt.Errorf("collection.Upsert: %s %q: %w", c.name, rec.GetID(), model.ErrConflict)
		}
		c.items = slices.Insert(c.items, 0, rec)
		created = true
	}
	snap, ver := c.snapshotLocked()
	c.mu.Unlock()

	c.obs.Mutation(c.name, "upsert")
	c.persist(ctx, snap, ver)

	return rec, created, nil
}

// Delete removes the record. The file is only rewritten when something was removed.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return c.notFound
	}
	c.items = slices.Delete(c.items, idx, idx+1)
	snap, ver := c.snapshotLocked()
	c.mu.Unlock()

	c.obs.Mutation(c.name, "delete")
	c.persist(ctx, snap, ver)

	return nil
}

// Flush writes the current records regardless of what was written before.
func (c *Collection[T]) Flush(ctx context.Context) error {
	c.mu.RLock()
	snap := slices.Clone(c.items)
	c.mu.RUnlock()

	start := time.Now()
	err := c.file.Save(ctx, snap)
	c.obs.Persisted(c.name, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("collection.Flush: %s: %w", c.name, err)
	}

	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(rec T) bool { return rec.GetID() == id })
}

func (c *Collection[T]) snapshotLocked() ([]T, uint64) {
	c.version++
	return slices.Clone(c.items), c.version
}

// persist runs outside the lock. A failed write keeps the in-memory change.
func (c *Collection[T]) persist(ctx context.Context, snap []T, version uint64) {
	start := time.Now()
	written, err := c.file.SaveVersion(ctx, version, snap)
	if !written && err == nil {
		return
	}

	c.obs.Persisted(c.name, time.Since(start), err)
	if err != nil {
		logger.Error(ctx, "failed to persist collection",
			logger.String("collection", c.name),
			logger.String("path", c.file.Path()),
			logger.Uint64("version", version),
			logger.ErrorF(err),
		)
	}
}

type nopObserver struct{}

func (nopObserver) Mutation(string, string) {}

func (nopObserver) Persisted(string, time.Duration, error) {}
