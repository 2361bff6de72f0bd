package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/hxroute"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/tag"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(c *cli) *cobra.Command {
	var (
		opts pageOptions
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a page with live reload of its content",
		Long: `Serve a page built from the page flags.

The page carries a Reload button that fetches the body again over
htmx, re-reading --body and --table from disk. Prometheus metrics
are served on the configured metrics path.

Examples:
  tagkit serve --table data.csv
  tagkit serve --addr :8080 --body fragment.html --style theme.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyTo(c)
			if addr != "" {
				c.cfg.Serve.Addr = addr
			}
			handler, err := c.serveHandler(opts, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			return c.listen(cmd.Context(), handler)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from tagkit.json)")

	return cmd
}

// serveHandler builds the router: the page at /, its callbacks and the
// metrics endpoint. Files are re-read on every request.
func (c *cli) serveHandler(opts pageOptions, registry *prometheus.Registry) (http.Handler, error) {
	for _, path := range append([]string{opts.body, opts.table}, opts.styles...) {
		if path == "-" {
			return nil, errors.New("C003").
				WithDetail("serve cannot read stdin").
				WithSuggestion("Pass file paths instead of '-'")
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if c.verbose {
		router.Use(middleware.Logger)
	}
	router.Use(middleware.Recoverer)

	var metrics *render.Metrics
	if c.cfg.MetricsEnabled() {
		registry.MustRegister(collectors.NewGoCollector())
		metrics = render.NewMetrics(render.WithRegistry(registry))
		router.Handle(c.cfg.Serve.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	reg := hxroute.New(hxroute.Config{
		Router:   router,
		Renderer: c.renderer(metrics),
		Logger:   c.logger,
	})

	noInput := strings.NewReader("")
	content := func(context.Context) (*tag.Node, error) {
		body, err := buildBody(noInput, opts)
		if err != nil {
			return nil, err
		}
		return tag.Div(tag.ID("content"), body), nil
	}

	reload := tag.Button(tag.ID("reload"), "Reload")
	if err := reload.AttachCallback(reg, tag.Callback{
		Func:   content,
		Key:    "reload",
		Target: "#content",
		Swap:   "outerHTML",
	}); err != nil {
		return nil, err
	}

	page := func(ctx context.Context) (*tag.Node, error) {
		styles, err := loadStyles(noInput, opts.styles)
		if err != nil {
			return nil, err
		}
		body, err := content(ctx)
		if err != nil {
			return nil, err
		}
		data := render.PageData{
			Lang:   opts.lang,
			Styles: styles,
			Body:   []*tag.Node{reload.Clone(), body},
		}
		return data.Document(), nil
	}
	if err := reg.RegisterRoute("/", page, []string{http.MethodGet}); err != nil {
		return nil, err
	}

	return router, nil
}

// listen serves handler until ctx is cancelled or the process is
// interrupted.
func (c *cli) listen(ctx context.Context, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              c.cfg.Serve.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	c.logger.Info("serving", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return errors.Newf(errors.CategoryCLI, "listening on %s", srv.Addr).Wrap(err)
	case <-ctx.Done():
	}

	c.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
