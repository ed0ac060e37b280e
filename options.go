// Copyright 2024 The pathmap authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/pathmap-go/pathmap/blob/master/LICENSE.txt.

package pathmap

import (
	"fmt"
	"net/http"
)

// GlobalOption configures a [Router] at creation time.
type GlobalOption interface {
	applyGlob(sealedOption) error
}

// RouteOption configures a route at registration time.
type RouteOption interface {
	applyRoute(sealedOption) error
}

type sealedOption struct {
	router *Router
	route  *Route
}

type optionFunc func(sealedOption) error

func (o optionFunc) applyGlob(s sealedOption) error {
	return o(s)
}

func (o optionFunc) applyRoute(s sealedOption) error {
	return o(s)
}

// WithNoRouteHandler registers an [http.Handler] which is called when no
// mapping matches the request path. By default, [http.NotFoundHandler] is used.
func WithNoRouteHandler(handler http.Handler) GlobalOption {
	return optionFunc(func(s sealedOption) error {
		if handler == nil {
			return fmt.Errorf("%w: no route handler cannot be nil", ErrInvalidConfig)
		}
		s.router.noRoute = handler
		return nil
	})
}

// WithMiddleware attaches a global middleware chain to the router. Middleware
// is applied to every route handler and to the no-route handler, in the order
// provided.
func WithMiddleware(mws ...MiddlewareFunc) GlobalOption {
	return optionFunc(func(s sealedOption) error {
		for _, mw := range mws {
			if mw == nil {
				return fmt.Errorf("%w: middleware cannot be nil", ErrInvalidConfig)
			}
		}
		s.router.mws = append(s.router.mws, mws...)
		return nil
	})
}

// WithRouteName attaches a unique name to a route. Registering a second route
// with the same name fails with a [RouteNameConflictError].
func WithRouteName(name string) RouteOption {
	return optionFunc(func(s sealedOption) error {
		if name == "" {
			return fmt.Errorf("%w: route name cannot be empty", ErrInvalidRoute)
		}
		s.route.name = name
		return nil
	})
}
