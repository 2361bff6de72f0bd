package export

import (
	"context"
	"log/slog"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/style"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// Config configures an Exporter.
type Config struct {
	Sink Sink

	// Renderer renders pages. Defaults to a renderer with the same logger.
	Renderer *render.Renderer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Exporter renders documents and stores them in a Sink.
type Exporter struct {
	sink     Sink
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates an Exporter. It panics if config.Sink is nil.
func New(config Config) *Exporter {
	if config.Sink == nil {
		panic("export: nil Sink")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := config.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{Logger: logger})
	}
	return &Exporter{
		sink:     config.Sink,
		renderer: renderer,
		logger:   logger.With("component", "export"),
	}
}

// Page renders page with the default head and stores it under name.
func (e *Exporter) Page(ctx context.Context, name string, page *tag.Node) (string, error) {
	html, err := e.renderer.RenderPageToString(ctx, page)
	if err != nil {
		return "", err
	}
	return e.put(ctx, name, "text/html; charset=utf-8", html)
}

// Fragment renders node as-is and stores it under name.
func (e *Exporter) Fragment(ctx context.Context, name string, node *tag.Node) (string, error) {
	html, err := e.renderer.RenderToString(ctx, node)
	if err != nil {
		return "", err
	}
	return e.put(ctx, name, "text/html; charset=utf-8", html)
}

// StyleSheet renders s and stores it under name.
func (e *Exporter) StyleSheet(ctx context.Context, name string, s *style.StyleSheet) (string, error) {
	if s == nil {
		return "", errors.New("S002").WithDetail("nil stylesheet")
	}
	css, err := s.Render()
	if err != nil {
		return "", err
	}
	return e.put(ctx, name, "text/css; charset=utf-8", css)
}

func (e *Exporter) put(ctx context.Context, name, contentType, body string) (string, error) {
	loc, err := e.sink.Put(ctx, name, contentType, []byte(body))
	if err != nil {
		err = errors.FromError(err, "E002")
		e.logger.ErrorContext(ctx, "export failed", "name", name, "error", err)
		return "", err
	}
	e.logger.InfoContext(ctx, "exported", "name", name, "location", loc, "bytes", len(body))
	return loc, nil
}
