package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local writes uploads below dir and serves them from urlPrefix.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	name := filepath.Base(key)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("invalid upload key %q", key)
	}

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(l.urlPrefix, name), nil
}
