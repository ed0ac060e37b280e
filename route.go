package pathmap

import "net/http"

// Route associates a [Mapping] with an [http.Handler]. A Route is immutable
// once registered and safe for concurrent use.
type Route struct {
	mapping Mapping
	hbase   http.Handler
	hchain  http.Handler
	name    string
}

// Mapping returns the path mapping this route was registered with.
func (r *Route) Mapping() Mapping {
	return r.mapping
}

// Handler returns the handler this route was registered with, without
// router middleware applied.
func (r *Route) Handler() http.Handler {
	return r.hbase
}

// Name returns the route name, or "" when the route is unnamed.
func (r *Route) Name() string {
	return r.name
}

// Pattern returns a description of the route's mapping.
func (r *Route) Pattern() string {
	return r.mapping.String()
}
