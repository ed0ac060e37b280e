// Copyright 2024 The pathmap authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/pathmap-go/pathmap/blob/master/LICENSE.txt.

package pathmap

import (
	"fmt"
	"regexp"
	"strings"
)

// GlobMapping matches a path against a glob expression. The glob is compiled
// once, at construction, into an anchored regular expression which handles
// every subsequent match. GlobMapping performs no translation.
type GlobMapping struct {
	glob string
	re   *RegexMapping
}

func newGlobMapping(glob string) (*GlobMapping, error) {
	expr, err := globToRegex(glob)
	if err != nil {
		return nil, err
	}
	return &GlobMapping{glob: glob, re: Regex(expr)}, nil
}

// Glob returns the glob expression this mapping was built from.
func (m *GlobMapping) Glob() string {
	return m.glob
}

func (m *GlobMapping) Apply(path string) (string, bool) {
	return m.re.Apply(path)
}

func (m *GlobMapping) Equal(other Mapping) bool {
	om, ok := other.(*GlobMapping)
	if !ok {
		return false
	}
	return m.glob == om.glob
}

func (m *GlobMapping) String() string {
	return "glob:" + m.glob
}

// globToRegex compiles a glob expression into an equivalent regular expression.
// The caller anchors the result against the whole path via [Regex].
//
// Wildcard translation rules:
//
//   - "*" becomes "[^/]*": any run of characters within a single component.
//   - "**" spanning whole components and followed by more pattern, i.e. "**/",
//     becomes "(?:.*/)?" so that zero components match: "/foo/**/bar" accepts
//     both "/foo/bar" and "/foo/x/y/bar".
//   - "**" at the end of the pattern becomes ".*" so that an empty remainder
//     matches: "/foo/**" accepts "/foo/".
//   - "**" embedded in a component, e.g. "/a**b", becomes ".*" and may cross
//     component boundaries.
//
// Adjacent component wildcards such as "/**/**" compose by the same rules,
// compiling to "/(?:.*/)?.*". Three or more consecutive '*' is invalid.
func globToRegex(glob string) (*regexp.Regexp, error) {
	pattern := glob
	if !strings.HasPrefix(pattern, "/") {
		// A relative glob matches at any depth.
		pattern = "/**/" + pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); {
		if pattern[i] != '*' {
			j := i
			for j < len(pattern) && pattern[j] != '*' {
				j++
			}
			b.WriteString(regexp.QuoteMeta(pattern[i:j]))
			i = j
			continue
		}

		j := i
		for j < len(pattern) && pattern[j] == '*' {
			j++
		}
		switch j - i {
		case 1:
			b.WriteString(`[^/]*`)
			i = j
		case 2:
			wholeSegment := i == 0 || pattern[i-1] == '/'
			if wholeSegment && j < len(pattern) && pattern[j] == '/' {
				// Zero or more whole components, separator included.
				b.WriteString(`(?:.*/)?`)
				i = j + 1
			} else {
				b.WriteString(`.*`)
				i = j
			}
		default:
			return nil, fmt.Errorf("%w: %q has more than two consecutive '*'", ErrInvalidGlob, glob)
		}
	}

	expr, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidGlob, glob, err)
	}
	return expr, nil
}
