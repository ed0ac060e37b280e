// Copyright 2024 The pathmap authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/pathmap-go/pathmap/blob/master/LICENSE.txt.

// Package pathmap matches the absolute path part of a request URI and translates
// the matched path to another path string. A [Mapping] is built once, at route-table
// construction time, and then invoked concurrently for every request. Matching
// never mutates a mapping, so no synchronization is required on the request path.
//
// Mappings come in five variants: exact, prefix, catch-all, regex and glob. A glob
// compiles once into an anchored regular expression. On top of any mapping, the
// translation decorators [StripPrefix], [StripComponents], [StripParents] and
// [Prepend] rewrite the translated path without ever changing the match decision.
package pathmap

import (
	"fmt"
	"regexp"
	"strings"
)

// Mapping matches an absolute path and translates the matched path to another
// path string. Implementations are immutable and safe for concurrent use.
type Mapping interface {
	// Apply matches path and, on success, returns the translated path.
	// The second return value reports whether path matched: a no-match is
	// ordinary control data, never an error. The translated path is always
	// absolute, never empty.
	Apply(path string) (mapped string, ok bool)
	// Equal reports whether this mapping is structurally equivalent to another.
	Equal(other Mapping) bool
	// String returns a short description of the mapping, suitable for logging.
	String() string
}

// Exact creates a [Mapping] that performs an exact, byte-for-byte match against
// path. The returned mapping always translates the matched path to "/", since an
// exact match carries no residual path information. It returns an error if path
// is not absolute.
func Exact(path string) (*ExactMapping, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: exact path %q must start with '/'", ErrInvalidPattern, path)
	}
	return &ExactMapping{path: path}, nil
}

// Prefix creates a [Mapping] that matches any path under the given directory
// prefix. The prefix must be absolute and is normalized to end with '/'. When
// strip is true, the prefix is removed from the translated path:
//
//	"/foo/"        translates to "/"
//	"/foo/bar"     translates to "/bar"
//	"/foo/bar/baz" translates to "/bar/baz"
//
// When strip is false, the translated path is the matched path unchanged.
// A prefix of exactly "/" matches every path and collapses to [CatchAll].
func Prefix(prefix string, strip bool) (Mapping, error) {
	if !strings.HasPrefix(prefix, "/") {
		return nil, fmt.Errorf("%w: path prefix %q must start with '/'", ErrInvalidPattern, prefix)
	}
	if prefix == "/" {
		// Every path starts with '/'.
		return CatchAll(), nil
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &PrefixMapping{prefix: prefix, strip: strip}, nil
}

// CatchAll returns the singleton [Mapping] that matches every path and performs
// no translation. To translate, layer decorators such as [StripPrefix] on top.
func CatchAll() Mapping {
	return catchAll
}

// Regex creates a [Mapping] that matches a path against the given regular
// expression. The pattern is anchored against the whole path, so a partial
// match never counts. The returned mapping performs no translation; to
// translate, layer decorators such as [StripPrefix] on top.
// Regex panics if re is nil.
func Regex(re *regexp.Regexp) *RegexMapping {
	if re == nil {
		panic("pathmap: regex cannot be nil")
	}
	return &RegexMapping{
		source: re.String(),
		re:     regexp.MustCompile(`\A(?:` + re.String() + `)\z`),
	}
}

// Glob creates a [Mapping] that matches a path against the given glob
// expression, where "*" matches any run of characters within a single path
// component and "**" matches zero or more path components. A glob that does
// not start with '/' matches at any depth, as if prefixed with "/**/".
// The returned mapping performs no translation; to translate, layer decorators
// such as [StripPrefix] on top.
//
// A glob starting with '/' and containing no wildcard is a literal path and
// collapses to [Exact]. Glob returns an error wrapping [ErrInvalidGlob] if the
// pattern cannot be compiled.
func Glob(pattern string) (Mapping, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidGlob)
	}
	if strings.HasPrefix(pattern, "/") && !strings.Contains(pattern, "*") {
		// Static route, no pattern matching required.
		return Exact(pattern)
	}
	return newGlobMapping(pattern)
}
