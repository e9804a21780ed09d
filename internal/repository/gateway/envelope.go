package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type Envelope[T any] struct {
	Items       []T    `json:"items"`
	LastUpdated string `json:"last_updated"`
	Total       int    `json:"total"`
}

// legacyEnvelope also covers repairs files written before the items key existed.
type legacyEnvelope[T any] struct {
	Items   []T `json:"items"`
	Repairs []T `json:"repairs"`
}

// EnvelopeFile binds a collection file to the gateway.
type EnvelopeFile[T any] struct {
	gw   *Gateway
	path string
	now  func() time.Time
}

func NewEnvelopeFile[T any](gw *Gateway, path string, now func() time.Time) *EnvelopeFile[T] {
	if now == nil {
		now = time.Now
	}
	return &EnvelopeFile[T]{gw: gw, path: path, now: now}
}

func (f *EnvelopeFile[T]) Path() string { return f.path }

// Load returns the stored items. It accepts the envelope, the legacy repairs
// layout and a bare array; anything else is reported as not loaded.
func (f *EnvelopeFile[T]) Load(ctx context.Context) ([]T, bool) {
	data, ok := f.gw.read(ctx, f.path)
	if !ok {
		return nil, false
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			f.logParseError(ctx, err)
			return nil, false
		}
		return nonNil(items), true
	}

	var env legacyEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		f.logParseError(ctx, err)
		return nil, false
	}
	if env.Items != nil {
		return env.Items, true
	}

	return nonNil(env.Repairs), true
}

func (f *EnvelopeFile[T]) Save(ctx context.Context, items []T) error {
	return f.gw.Save(ctx, f.path, f.envelope(items))
}

func (f *EnvelopeFile[T]) SaveVersion(ctx context.Context, version uint64, items []T) (bool, error) {
	return f.gw.SaveVersion(ctx, f.path, version, f.envelope(items))
}

func (f *EnvelopeFile[T]) envelope(items []T) Envelope[T] {
	return Envelope[T]{
		Items:       nonNil(items),
		LastUpdated: model.FormatTime(f.now()),
		Total:       len(items),
	}
}

func (f *EnvelopeFile[T]) logParseError(ctx context.Context, err error) {
	logger.Error(ctx, "failed to parse data file",
		logger.String("path", f.path),
		logger.ErrorF(err),
	)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
