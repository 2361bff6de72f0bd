package export

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// Sink stores exported files.
type Sink interface {
	// Put stores data under name and returns where it was written.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// CleanName validates an export name and returns it in canonical form.
// Names are relative slash-separated paths that stay inside the sink.
func CleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return "", errors.New("E001").WithDetailf("%q", name)
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.New("E001").WithDetailf("%q", name)
	}
	return clean, nil
}

// DirSink writes files below a local directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a DirSink, creating dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E002").WithDetailf("creating %s", dir).Wrap(err)
	}
	return &DirSink{dir: dir}, nil
}

// Put writes data to dir/name, creating parent directories.
func (s *DirSink) Put(ctx context.Context, name, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := CleanName(name)
	if err != nil {
		return "", err
	}
	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", errors.New("E002").WithDetailf("creating %s", filepath.Dir(target)).Wrap(err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", errors.New("E002").WithDetailf("writing %s", target).Wrap(err)
	}
	return target, nil
}
