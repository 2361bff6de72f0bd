// Package render serves tag trees as HTML documents and fragments.
//
// A Renderer wraps (*tag.Node).Render with the concerns of a serving
// process: structured logging, Prometheus metrics and OpenTelemetry spans.
// Output is produced in full before anything is written, so a failed render
// never leaves partial markup in the writer.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(ctx, node)
//
// # Full Pages
//
// RenderPage merges the default head into a copy of the page before
// rendering. The default head starts with the htmx script so callback
// attributes work without further setup:
//
//	r := render.NewRenderer(render.RendererConfig{
//	    DefaultHead: []*tag.Node{tag.Title("Home")},
//	})
//	err := r.RenderPage(ctx, w, tag.Html(tag.Body(tag.H1("Hi"))))
//
// PageData assembles a document from head metadata and body nodes.
//
// # Metrics
//
// NewMetrics registers render counters and a duration histogram:
//
//	m := render.NewMetrics(render.WithNamespace("myapp"))
//	r := render.NewRenderer(render.RendererConfig{Metrics: m})
package render
