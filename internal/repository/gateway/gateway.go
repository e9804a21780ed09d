package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/you-humble/techrepair/platform/logger"
)

type fileState struct {
	mu      sync.Mutex
	written uint64
}

// Gateway reads and writes JSON documents on disk.
// Writes to the same path never interleave and always replace the file atomically.
type Gateway struct {
	files sync.Map // path -> *fileState
}

func NewGateway() *Gateway { return &Gateway{} }

// Load decodes the document at path into dst.
// It reports false when the file is missing or unreadable, leaving dst untouched.
func (g *Gateway) Load(ctx context.Context, path string, dst any) bool {
	data, ok := g.read(ctx, path)
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		logger.Error(ctx, "failed to parse data file",
			logger.String("path", path),
			logger.ErrorF(err),
		)
		return false
	}

	return true
}

// Save unconditionally replaces the document at path.
func (g *Gateway) Save(ctx context.Context, path string, doc any) error {
	st := g.state(path)
	st.mu.Lock()
	defer st.mu.Unlock()

	return g.write(ctx, path, doc)
}

// SaveVersion writes doc unless a snapshot with a higher version already reached the disk.
// It reports whether the file was written.
func (g *Gateway) SaveVersion(ctx context.Context, path string, version uint64, doc any) (bool, error) {
	st := g.state(path)
	st.mu.Lock()
	defer st.mu.Unlock()

	if version <= st.written {
		return false, nil
	}
	if err := g.write(ctx, path, doc); err != nil {
		return false, err
	}
	st.written = version

	return true, nil
}

func (g *Gateway) state(path string) *fileState {
	st, _ := g.files.LoadOrStore(path, &fileState{})
	return st.(*fileState)
}

func (g *Gateway) read(ctx context.Context, path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error(ctx, "failed to read data file",
				logger.String("path", path),
				logger.ErrorF(err),
			)
		}
		return nil, false
	}
	return data, true
}

func (g *Gateway) write(_ context.Context, path string, doc any) error {
	const op = "gateway.write"

	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: marshal %s: %w", op, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Marshal encodes doc with two-space indentation and without escaping HTML or non-ASCII text.
func Marshal(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
