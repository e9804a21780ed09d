package settings

import (
	"context"
	"time"

	"github.com/you-humble/techrepair/internal/model"
)

type SettingsRepository interface {
	Get(ctx context.Context) model.Settings
	Merge(ctx context.Context, patch model.Settings) model.Settings
}

type service struct {
	repo SettingsRepository
	now  func() time.Time
}

func NewSettingsService(repository SettingsRepository, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repository, now: now}
}

func (svc *service) Get(ctx context.Context) model.Settings {
	return svc.repo.Get(ctx)
}

// Update merges patch into the document and stamps updated_at.
func (svc *service) Update(ctx context.Context, patch model.Settings) model.Settings {
	merged := patch.Clone()
	merged[model.SettingsUpdatedAtKey] = model.FormatTime(svc.now())

	return svc.repo.Merge(ctx, merged)
}
