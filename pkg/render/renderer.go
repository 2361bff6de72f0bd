package render

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// Default tracer name for render spans.
const defaultTracerName = "tagkit"

// HTMXScriptSrc is the htmx build referenced by the default head.
const HTMXScriptSrc = "https://unpkg.com/htmx.org@2.0.1"

// Doctype is written before full pages when RendererConfig.Doctype is set.
const Doctype = "<!DOCTYPE html>"

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Logger receives debug records for each render and warnings for
	// failures. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records render statistics. Nil disables metrics.
	Metrics *Metrics

	// Tracer creates a span per render. Defaults to the global
	// OpenTelemetry tracer provider.
	Tracer trace.Tracer

	// DefaultHead is merged into every page rendered with RenderPage,
	// after the htmx script.
	DefaultHead []*tag.Node

	// OmitHTMX leaves the htmx script out of the default head.
	OmitHTMX bool

	// Doctype prefixes full pages with <!DOCTYPE html>.
	Doctype bool
}

// Renderer renders tag trees. It holds no per-render state and is safe for
// concurrent use as long as each call gets its own tree.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}
	return &Renderer{
		config: config,
		logger: logger.With("component", "render"),
		tracer: tracer,
	}
}

// RenderToString renders node to markup.
func (r *Renderer) RenderToString(ctx context.Context, node *tag.Node) (string, error) {
	if node == nil {
		return "", errors.New("T005").WithDetail("nil root node")
	}

	// Custom element names would make the label unbounded.
	root := node.Kind().String()

	ctx, span := r.tracer.Start(ctx, "tagkit.render",
		trace.WithAttributes(attribute.String("tagkit.root", node.Name())),
	)
	defer span.End()

	start := time.Now()
	html, err := node.Render()
	elapsed := time.Since(start)
	r.config.Metrics.observe(root, elapsed, len(html), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.WarnContext(ctx, "render failed",
			"root", node.Name(),
			"code", errors.Code(err),
			"error", err,
		)
		return "", err
	}

	span.SetAttributes(attribute.Int("tagkit.bytes", len(html)))
	span.SetStatus(codes.Ok, "")
	r.logger.DebugContext(ctx, "rendered",
		"root", node.Name(),
		"bytes", len(html),
		"duration", elapsed,
	)
	return html, nil
}

// RenderToWriter renders node and writes the result to w. Nothing is
// written when rendering fails.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, node *tag.Node) error {
	html, err := r.RenderToString(ctx, node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// DefaultHead returns fresh copies of the default head nodes: the htmx
// script unless OmitHTMX is set, then RendererConfig.DefaultHead.
func (r *Renderer) DefaultHead() []*tag.Node {
	head := make([]*tag.Node, 0, len(r.config.DefaultHead)+1)
	if !r.config.OmitHTMX {
		head = append(head, tag.Script(tag.Src(HTMXScriptSrc)))
	}
	for _, n := range r.config.DefaultHead {
		if n != nil {
			head = append(head, n.Clone())
		}
	}
	return head
}

// RenderPage merges the default head into a copy of page and writes the
// rendered document to w. page itself is not modified.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page *tag.Node) error {
	html, err := r.RenderPageToString(ctx, page)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// RenderPageToString is RenderPage returning the document.
func (r *Renderer) RenderPageToString(ctx context.Context, page *tag.Node) (string, error) {
	if page == nil {
		return "", errors.New("T005").WithDetail("nil page")
	}
	doc := page.Clone()
	if err := doc.AddHead(r.DefaultHead()); err != nil {
		return "", err
	}
	html, err := r.RenderToString(ctx, doc)
	if err != nil {
		return "", err
	}
	if r.config.Doctype {
		html = Doctype + html
	}
	return html, nil
}
