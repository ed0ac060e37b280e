package pathmap

import (
	"strconv"
	"strings"

	"github.com/pathmap-go/pathmap/internal/pathutil"
)

// StripPrefix creates a [Mapping] that removes prefix from the front of the
// path translated by m, when present. The match decision is delegated to m
// unchanged; only the translated path is rewritten. An empty prefix returns m.
//
// StripPrefix is typically layered on [Regex] or [Glob] mappings, which never
// rewrite the path themselves:
//
//	m, _ := pathmap.Glob("/foo/*/bar/**")
//	m = pathmap.StripPrefix(m, "/foo/")
func StripPrefix(m Mapping, prefix string) Mapping {
	if prefix == "" {
		return m
	}
	return &stripPrefixMapping{inner: m, prefix: prefix}
}

// StripComponents creates a [Mapping] that removes the first n '/'-delimited
// components from the path translated by m. The match decision is delegated to
// m unchanged. When the translated path has n components or fewer, the result
// is "/". StripComponents returns m when n == 0 and panics when n is negative.
func StripComponents(m Mapping, n int) Mapping {
	if n < 0 {
		panic("pathmap: cannot strip " + strconv.Itoa(n) + " path components")
	}
	if n == 0 {
		return m
	}
	return &stripComponentsMapping{inner: m, n: n}
}

// StripParents creates a [Mapping] that removes all parent components from the
// path translated by m, keeping only the final component prefixed by '/'.
// Useful when only the file name part of the path is of interest.
func StripParents(m Mapping) Mapping {
	return &stripParentsMapping{inner: m}
}

// Prepend creates a [Mapping] that prepends prefix to the path translated by m.
// The match decision is delegated to m unchanged. A prefix of "" or "/" returns m.
func Prepend(m Mapping, prefix string) Mapping {
	if prefix == "" || prefix == "/" {
		return m
	}
	return &prependMapping{inner: m, prefix: prefix}
}

type stripPrefixMapping struct {
	inner  Mapping
	prefix string
}

func (m *stripPrefixMapping) Apply(path string) (string, bool) {
	mapped, ok := m.inner.Apply(path)
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(mapped, m.prefix) {
		return mapped, true
	}
	return pathutil.EnsureLeadingSlash(mapped[len(m.prefix):]), true
}

func (m *stripPrefixMapping) Equal(other Mapping) bool {
	om, ok := other.(*stripPrefixMapping)
	if !ok {
		return false
	}
	return m.prefix == om.prefix && m.inner.Equal(om.inner)
}

func (m *stripPrefixMapping) String() string {
	return "stripPrefix:" + m.prefix + "(" + m.inner.String() + ")"
}

func (m *stripPrefixMapping) Unwrap() Mapping {
	return m.inner
}

type stripComponentsMapping struct {
	inner Mapping
	n     int
}

func (m *stripComponentsMapping) Apply(path string) (string, bool) {
	mapped, ok := m.inner.Apply(path)
	if !ok {
		return "", false
	}
	return pathutil.StripComponents(mapped, m.n), true
}

func (m *stripComponentsMapping) Equal(other Mapping) bool {
	om, ok := other.(*stripComponentsMapping)
	if !ok {
		return false
	}
	return m.n == om.n && m.inner.Equal(om.inner)
}

func (m *stripComponentsMapping) String() string {
	return "stripComponents:" + strconv.Itoa(m.n) + "(" + m.inner.String() + ")"
}

func (m *stripComponentsMapping) Unwrap() Mapping {
	return m.inner
}

type stripParentsMapping struct {
	inner Mapping
}

func (m *stripParentsMapping) Apply(path string) (string, bool) {
	mapped, ok := m.inner.Apply(path)
	if !ok {
		return "", false
	}
	return pathutil.LastComponent(mapped), true
}

func (m *stripParentsMapping) Equal(other Mapping) bool {
	om, ok := other.(*stripParentsMapping)
	if !ok {
		return false
	}
	return m.inner.Equal(om.inner)
}

func (m *stripParentsMapping) String() string {
	return "stripParents(" + m.inner.String() + ")"
}

func (m *stripParentsMapping) Unwrap() Mapping {
	return m.inner
}

type prependMapping struct {
	inner  Mapping
	prefix string
}

func (m *prependMapping) Apply(path string) (string, bool) {
	mapped, ok := m.inner.Apply(path)
	if !ok {
		return "", false
	}
	return m.prefix + mapped, true
}

func (m *prependMapping) Equal(other Mapping) bool {
	om, ok := other.(*prependMapping)
	if !ok {
		return false
	}
	return m.prefix == om.prefix && m.inner.Equal(om.inner)
}

func (m *prependMapping) String() string {
	return "prepend:" + m.prefix + "(" + m.inner.String() + ")"
}

func (m *prependMapping) Unwrap() Mapping {
	return m.inner
}
