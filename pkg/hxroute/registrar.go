package hxroute

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// Config configures a Registrar.
type Config struct {
	// Router receives the callback routes. Defaults to a new chi router.
	// Middleware must be added to it before New is called.
	Router chi.Router

	// Renderer renders callback results. Defaults to a renderer with the
	// same logger.
	Renderer *render.Renderer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Route describes a registered callback route.
type Route struct {
	Path    string
	Methods []string
}

// Registrar registers tag callbacks as chi routes. It is safe for
// concurrent use.
//
// Paths under tag.CallbackPrefix are served by one wildcard route that
// looks the callback up in a locked table, so callbacks may be attached
// while requests are being served. Any other path is mounted on the router
// directly and must be registered before serving starts.
type Registrar struct {
	router   chi.Router
	renderer *render.Renderer
	logger   *slog.Logger

	mu     sync.RWMutex
	routes map[string]*entry
}

type entry struct {
	methods []string
	handler http.Handler // nil for paths mounted on the router
}

var _ tag.RouteRegistrar = (*Registrar)(nil)

// New creates a Registrar.
func New(config Config) *Registrar {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	router := config.Router
	if router == nil {
		router = chi.NewRouter()
	}
	renderer := config.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{Logger: logger})
	}
	r := &Registrar{
		router:   router,
		renderer: renderer,
		logger:   logger.With("component", "hxroute"),
		routes:   make(map[string]*entry),
	}
	router.Handle(tag.CallbackPrefix+"*", http.HandlerFunc(r.dispatch))
	return r
}

// Router returns the router the callbacks are mounted on.
func (r *Registrar) Router() chi.Router {
	return r.router
}

// ServeHTTP serves the callback routes.
func (r *Registrar) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// RegisterRoute mounts handler at path for each method. Methods default to
// GET. Registering a callback path again with the same methods replaces
// its handler; any other duplicate fails.
func (r *Registrar) RegisterRoute(path string, handler tag.CallbackFunc, methods []string) error {
	if handler == nil {
		return errors.New("T007").WithDetailf("nil handler for %s", path)
	}
	if !strings.HasPrefix(path, "/") {
		return errors.New("T007").WithDetailf("path %q must start with /", path)
	}
	if len(methods) == 0 {
		methods = []string{http.MethodGet}
	}
	upper := make([]string, len(methods))
	for i, m := range methods {
		upper[i] = strings.ToUpper(m)
	}
	dynamic := strings.HasPrefix(path, tag.CallbackPrefix)

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.routes[path]; ok {
		if !dynamic || !slices.Equal(prev.methods, upper) {
			return errors.New("T007").WithDetailf("%s is already registered", path)
		}
		prev.handler = r.handle(path, handler)
		r.logger.Debug("callback replaced", "path", path)
		return nil
	}

	h := r.handle(path, handler)
	e := &entry{methods: upper}
	if dynamic {
		e.handler = h
	} else {
		for _, m := range upper {
			r.router.Method(m, path, h)
		}
	}
	r.routes[path] = e

	r.logger.Debug("callback registered", "path", path, "methods", upper)
	return nil
}

// RemoveRoute drops a callback registered under tag.CallbackPrefix and
// reports whether it existed. Paths mounted on the router stay.
func (r *Registrar) RemoveRoute(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.routes[path]
	if !ok || e.handler == nil {
		return false
	}
	delete(r.routes, path)
	return true
}

// Routes lists the registered callback routes sorted by path.
func (r *Registrar) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Route, 0, len(r.routes))
	for p, e := range r.routes {
		out = append(out, Route{Path: p, Methods: append([]string(nil), e.methods...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// dispatch serves the wildcard route under tag.CallbackPrefix.
func (r *Registrar) dispatch(w http.ResponseWriter, req *http.Request) {
	path := tag.CallbackPrefix + chi.URLParam(req, "*")

	r.mu.RLock()
	e, ok := r.routes[path]
	var methods []string
	var h http.Handler
	if ok {
		methods, h = e.methods, e.handler
	}
	r.mu.RUnlock()

	if h == nil {
		http.NotFound(w, req)
		return
	}
	if !slices.Contains(methods, req.Method) {
		w.Header().Set("Allow", strings.Join(methods, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.ServeHTTP(w, req)
}

func (r *Registrar) handle(path string, handler tag.CallbackFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), requestKey{}, req)

		node, err := handler(ctx)
		if err != nil {
			r.fail(w, req, path, err)
			return
		}
		if node == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var html string
		if node.Kind() == tag.KindHtml {
			html, err = r.renderer.RenderPageToString(ctx, node)
		} else {
			html, err = r.renderer.RenderToString(ctx, node)
		}
		if err != nil {
			r.fail(w, req, path, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			r.logger.Debug("write response", "path", path, "error", err)
		}
	})
}

func (r *Registrar) fail(w http.ResponseWriter, req *http.Request, path string, err error) {
	status := StatusFor(err)
	r.logger.Error("callback failed",
		"path", path,
		"method", req.Method,
		"status", status,
		"code", errors.Code(err),
		"error", err,
	)
	http.Error(w, http.StatusText(status), status)
}

// StatusFor maps a callback error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrUsage), stderrors.Is(err, errors.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type requestKey struct{}

// Request returns the HTTP request a callback is serving, or nil outside
// of a callback.
func Request(ctx context.Context) *http.Request {
	req, _ := ctx.Value(requestKey{}).(*http.Request)
	return req
}
