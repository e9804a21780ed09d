package settings

import (
	"context"
	"maps"
	"sync"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/internal/repository/gateway"
	"github.com/you-humble/techrepair/platform/logger"
)

// repository keeps the settings document. Unlike collections it is stored without an envelope.
type repository struct {
	mu      *sync.RWMutex
	gw      *gateway.Gateway
	path    string
	doc     model.Settings
	version uint64
}

func NewSettingsRepository(mu *sync.RWMutex, gw *gateway.Gateway, path string) *repository {
	return &repository{
		mu:   mu,
		gw:   gw,
		path: path,
		doc:  model.Settings{},
	}
}

func (r *repository) Load(ctx context.Context) bool {
	doc := model.Settings{}
	ok := r.gw.Load(ctx, r.path, &doc)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !ok || doc == nil {
		r.doc = model.Settings{}
		return false
	}
	r.doc = doc

	return true
}

func (r *repository) Get(_ context.Context) model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.doc.Clone()
}

// Merge copies every key of patch into the document.
func (r *repository) Merge(ctx context.Context, patch model.Settings) model.Settings {
	r.mu.Lock()
	maps.Copy(r.doc, patch)
	r.version++
	snap, ver := r.doc.Clone(), r.version
	r.mu.Unlock()

	if _, err := r.gw.SaveVersion(ctx, r.path, ver, snap); err != nil {
		logger.Error(ctx, "failed to persist settings",
			logger.String("path", r.path),
			logger.ErrorF(err),
		)
	}

	return snap
}

func (r *repository) Flush(ctx context.Context) error {
	return r.gw.Save(ctx, r.path, r.Get(ctx))
}
