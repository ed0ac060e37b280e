package pathmap

import (
	"regexp"
	"strings"
)

var catchAll Mapping = CatchAllMapping{}

// ExactMapping matches a path by exact comparison with a literal path.
type ExactMapping struct {
	path string
}

// Path returns the literal path this mapping was built from.
func (m *ExactMapping) Path() string {
	return m.path
}

func (m *ExactMapping) Apply(path string) (string, bool) {
	if path != m.path {
		return "", false
	}
	// An exact match carries no residual path information.
	return "/", true
}

func (m *ExactMapping) Equal(other Mapping) bool {
	om, ok := other.(*ExactMapping)
	if !ok {
		return false
	}
	return m.path == om.path
}

func (m *ExactMapping) String() string {
	return "exact:" + m.path
}

// PrefixMapping matches any path under a directory prefix and optionally strips
// the prefix from the translated path.
type PrefixMapping struct {
	prefix string // always ends with '/'
	strip  bool
}

// Prefix returns the normalized directory prefix.
func (m *PrefixMapping) Prefix() string {
	return m.prefix
}

func (m *PrefixMapping) Apply(path string) (string, bool) {
	if !strings.HasPrefix(path, m.prefix) {
		return "", false
	}
	if !m.strip {
		return path, true
	}
	return "/" + path[len(m.prefix):], true
}

func (m *PrefixMapping) Equal(other Mapping) bool {
	om, ok := other.(*PrefixMapping)
	if !ok {
		return false
	}
	return m.prefix == om.prefix && m.strip == om.strip
}

func (m *PrefixMapping) String() string {
	if m.strip {
		return "prefix:" + m.prefix
	}
	return "prefixNoStrip:" + m.prefix
}

// CatchAllMapping matches every path and performs no translation. The zero
// value is ready to use; [CatchAll] returns a shared instance.
type CatchAllMapping struct{}

func (CatchAllMapping) Apply(path string) (string, bool) {
	return path, true
}

func (CatchAllMapping) Equal(other Mapping) bool {
	_, ok := other.(CatchAllMapping)
	return ok
}

func (CatchAllMapping) String() string {
	return "catchAll"
}

// RegexMapping matches a path against an anchored regular expression and
// performs no translation.
type RegexMapping struct {
	source string
	re     *regexp.Regexp
}

// Pattern returns the source of the regular expression this mapping was built
// from, without the anchoring added at construction.
func (m *RegexMapping) Pattern() string {
	return m.source
}

func (m *RegexMapping) Apply(path string) (string, bool) {
	if !m.re.MatchString(path) {
		return "", false
	}
	return path, true
}

func (m *RegexMapping) Equal(other Mapping) bool {
	om, ok := other.(*RegexMapping)
	if !ok {
		return false
	}
	return m.source == om.source
}

func (m *RegexMapping) String() string {
	return "regex:" + m.source
}
