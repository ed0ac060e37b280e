// Copyright 2024 The pathmap authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/pathmap-go/pathmap/blob/master/LICENSE.txt.

package pathmap

import (
	"errors"
)

var (
	ErrInvalidPattern = errors.New("invalid path pattern")
	ErrInvalidGlob    = errors.New("invalid glob pattern")
	ErrInvalidRoute   = errors.New("invalid route")
	ErrRouteExist     = errors.New("route already registered")
	ErrInvalidConfig  = errors.New("invalid config")
)

// RouteNameConflictError represents a conflict that occurred during route name
// registration. It contains the route being registered, and the existing route
// that caused the conflict.
type RouteNameConflictError struct {
	// New is the route that was being registered when the conflict was detected.
	New *Route
	// Conflict is the previously registered route that conflicts with New.
	Conflict *Route
}

func (e *RouteNameConflictError) Error() string {
	return "route name already registered: new route name '" + e.New.name +
		"' conflicts with route " + e.Conflict.Pattern()
}

// Unwrap returns the sentinel value [ErrRouteExist].
func (e *RouteNameConflictError) Unwrap() error {
	return ErrRouteExist
}
