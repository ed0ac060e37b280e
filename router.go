package pathmap

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"sync"
	"sync/atomic"
)

// MiddlewareFunc is a function type for implementing [http.Handler] middleware.
// The returned handler usually wraps the input handler. MiddlewareFunc
// functions should be thread-safe, as they will be called concurrently.
type MiddlewareFunc func(next http.Handler) http.Handler

type mappedPathKey struct{}

// Router dispatches requests through an ordered table of routes. The first
// route whose mapping matches the request path wins, and the translated path
// is made available to the handler via [MappedPath].
//
// The table is usually built in full before the router starts serving, but
// registering routes concurrently with serving is safe: readers always observe
// a consistent snapshot of the table.
type Router struct {
	routes  atomic.Pointer[[]*Route]
	mu      sync.Mutex
	noRoute http.Handler
	mws     []MiddlewareFunc
}

var _ http.Handler = (*Router)(nil)

// New returns a ready to use instance of [Router].
func New(opts ...GlobalOption) (*Router, error) {
	f := &Router{
		noRoute: http.NotFoundHandler(),
	}
	f.routes.Store(new([]*Route))
	for _, opt := range opts {
		if err := opt.applyGlob(sealedOption{router: f}); err != nil {
			return nil, err
		}
	}
	f.noRoute = applyMiddleware(f.mws, f.noRoute)
	return f, nil
}

// Handle registers a new route for the given mapping and appends it to the
// routing table. Routes are evaluated in registration order. It returns an
// error wrapping [ErrRouteExist] when a non-empty route name is already taken,
// or [ErrInvalidRoute] when the mapping or handler is nil.
func (f *Router) Handle(m Mapping, handler http.Handler, opts ...RouteOption) (*Route, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mapping", ErrInvalidRoute)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: nil handler", ErrInvalidRoute)
	}

	rte := &Route{
		mapping: m,
		hbase:   handler,
		hchain:  applyMiddleware(f.mws, handler),
	}
	for _, opt := range opts {
		if err := opt.applyRoute(sealedOption{router: f, route: rte}); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	routes := *f.routes.Load()
	if rte.name != "" {
		for _, existing := range routes {
			if existing.name == rte.name {
				return nil, &RouteNameConflictError{New: rte, Conflict: existing}
			}
		}
	}

	newRoutes := make([]*Route, len(routes), len(routes)+1)
	copy(newRoutes, routes)
	newRoutes = append(newRoutes, rte)
	f.routes.Store(&newRoutes)
	return rte, nil
}

// HandleFunc is a shortcut for [Router.Handle] with an [http.HandlerFunc].
func (f *Router) HandleFunc(m Mapping, handler http.HandlerFunc, opts ...RouteOption) (*Route, error) {
	return f.Handle(m, handler, opts...)
}

// Lookup returns the first registered route whose mapping matches path, along
// with the translated path. It returns ok == false when no route matches.
// Lookup is safe for concurrent use.
func (f *Router) Lookup(path string) (rte *Route, mapped string, ok bool) {
	for _, rte := range *f.routes.Load() {
		if mapped, ok := rte.mapping.Apply(path); ok {
			return rte, mapped, true
		}
	}
	return nil, "", false
}

// Routes returns an iterator over the registered routes, in registration order.
func (f *Router) Routes() iter.Seq[*Route] {
	return func(yield func(*Route) bool) {
		for _, rte := range *f.routes.Load() {
			if !yield(rte) {
				return
			}
		}
	}
}

// Len returns the number of registered routes.
func (f *Router) Len() int {
	return len(*f.routes.Load())
}

// ServeHTTP implements [http.Handler]. The request path is matched against the
// routing table; on a hit the translated path is stored in the request context
// and the route's handler is invoked, on a miss the no-route handler responds
// (by default with 404 Not Found).
func (f *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rte, mapped, ok := f.Lookup(r.URL.Path)
	if !ok {
		f.noRoute.ServeHTTP(w, r)
		return
	}
	ctx := context.WithValue(r.Context(), mappedPathKey{}, mapped)
	rte.hchain.ServeHTTP(w, r.WithContext(ctx))
}

// MappedPath returns the path translated by the mapping that routed r.
// For a request that did not pass through a [Router], it falls back to the
// request's own path.
func MappedPath(r *http.Request) string {
	if mapped, ok := r.Context().Value(mappedPathKey{}).(string); ok {
		return mapped
	}
	return r.URL.Path
}

func applyMiddleware(mws []MiddlewareFunc, h http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
