// Package hxroute serves tag callbacks over HTTP with a chi router.
//
// A Registrar implements tag.RouteRegistrar. Each callback attached with
// (*tag.Node).AttachCallback becomes a chi route; when htmx requests it the
// callback runs with the request in its context and the returned node is
// rendered as the response:
//
//	r := chi.NewRouter()
//	reg := hxroute.New(hxroute.Config{Router: r})
//
//	btn := tag.Button("Load")
//	err := btn.AttachCallback(reg, tag.Callback{
//	    Func: func(ctx context.Context) (*tag.Node, error) {
//	        req := hxroute.Request(ctx)
//	        return tag.P("hello " + req.URL.Query().Get("name")), nil
//	    },
//	})
//
// A callback returning an <html> element is rendered as a full page with
// the renderer's default head; any other node is rendered as a fragment.
package hxroute
