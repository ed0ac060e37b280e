package pathmap

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactMapping_Apply(t *testing.T) {
	cases := []struct {
		name        string
		path        string
		input       string
		want        string
		wantNoMatch bool
	}{
		{
			name:  "identical path",
			path:  "/foo/bar",
			input: "/foo/bar",
			want:  "/",
		},
		{
			name:  "root",
			path:  "/",
			input: "/",
			want:  "/",
		},
		{
			name:        "longer input",
			path:        "/foo/bar",
			input:       "/foo/barx",
			wantNoMatch: true,
		},
		{
			name:        "trailing slash differs",
			path:        "/foo/bar",
			input:       "/foo/bar/",
			wantNoMatch: true,
		},
		{
			name:        "prefix of the literal",
			path:        "/foo/bar",
			input:       "/foo",
			wantNoMatch: true,
		},
		{
			name:        "case sensitive",
			path:        "/foo",
			input:       "/Foo",
			wantNoMatch: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Exact(tc.path)
			require.NoError(t, err)
			mapped, ok := m.Apply(tc.input)
			if tc.wantNoMatch {
				assert.False(t, ok)
				assert.Empty(t, mapped)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, mapped)
		})
	}
}

func TestPrefixMapping_Apply(t *testing.T) {
	cases := []struct {
		name        string
		prefix      string
		strip       bool
		input       string
		want        string
		wantNoMatch bool
	}{
		{
			name:   "strip exact prefix",
			prefix: "/foo/",
			strip:  true,
			input:  "/foo/",
			want:   "/",
		},
		{
			name:   "strip single component",
			prefix: "/foo/",
			strip:  true,
			input:  "/foo/bar",
			want:   "/bar",
		},
		{
			name:   "strip nested components",
			prefix: "/foo/",
			strip:  true,
			input:  "/foo/bar/baz",
			want:   "/bar/baz",
		},
		{
			name:   "no strip keeps path",
			prefix: "/foo/",
			strip:  false,
			input:  "/foo/bar",
			want:   "/foo/bar",
		},
		{
			name:        "prefix without trailing content",
			prefix:      "/foo/",
			strip:       true,
			input:       "/foo",
			wantNoMatch: true,
		},
		{
			name:        "shared leading characters only",
			prefix:      "/foo/",
			strip:       true,
			input:       "/foobar/baz",
			wantNoMatch: true,
		},
		{
			name:        "unrelated path",
			prefix:      "/foo/",
			strip:       true,
			input:       "/bar/foo",
			wantNoMatch: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Prefix(tc.prefix, tc.strip)
			require.NoError(t, err)
			mapped, ok := m.Apply(tc.input)
			if tc.wantNoMatch {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, mapped)
		})
	}
}

func TestCatchAllMapping_Apply(t *testing.T) {
	m := CatchAll()
	for _, path := range []string{"/", "/foo", "/foo/bar", "/a/b/c/d"} {
		mapped, ok := m.Apply(path)
		require.True(t, ok)
		assert.Equal(t, path, mapped)
	}
}

func TestRegexMapping_Apply(t *testing.T) {
	cases := []struct {
		name        string
		pattern     string
		input       string
		wantNoMatch bool
	}{
		{
			name:    "full match",
			pattern: `^/foo/[^/]+/bar/.*$`,
			input:   "/foo/x/bar/baz",
		},
		{
			name:    "identity translation",
			pattern: `/foo/.*`,
			input:   "/foo/bar",
		},
		{
			name:        "partial match rejected",
			pattern:     `/foo`,
			input:       "/foo/bar",
			wantNoMatch: true,
		},
		{
			name:        "no match",
			pattern:     `^/foo/[0-9]+$`,
			input:       "/foo/abc",
			wantNoMatch: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Regex(regexp.MustCompile(tc.pattern))
			mapped, ok := m.Apply(tc.input)
			if tc.wantNoMatch {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			// Regex mappings never rewrite the path themselves.
			assert.Equal(t, tc.input, mapped)
		})
	}
}

func TestMapping_Equal(t *testing.T) {
	exactFoo, err := Exact("/foo")
	require.NoError(t, err)
	exactFoo2, err := Exact("/foo")
	require.NoError(t, err)
	exactBar, err := Exact("/bar")
	require.NoError(t, err)
	prefixFoo, err := Prefix("/foo/", true)
	require.NoError(t, err)
	prefixFooNoStrip, err := Prefix("/foo/", false)
	require.NoError(t, err)
	globFoo, err := Glob("/foo/*")
	require.NoError(t, err)
	globFoo2, err := Glob("/foo/*")
	require.NoError(t, err)

	cases := []struct {
		name string
		m1   Mapping
		m2   Mapping
		want bool
	}{
		{name: "equal exact", m1: exactFoo, m2: exactFoo2, want: true},
		{name: "different exact", m1: exactFoo, m2: exactBar, want: false},
		{name: "exact vs prefix", m1: exactFoo, m2: prefixFoo, want: false},
		{name: "strip vs no strip", m1: prefixFoo, m2: prefixFooNoStrip, want: false},
		{name: "equal glob", m1: globFoo, m2: globFoo2, want: true},
		{name: "glob vs catch-all", m1: globFoo, m2: CatchAll(), want: false},
		{name: "catch-all vs catch-all", m1: CatchAll(), m2: CatchAll(), want: true},
		{
			name: "equal regex",
			m1:   Regex(regexp.MustCompile(`/foo/.*`)),
			m2:   Regex(regexp.MustCompile(`/foo/.*`)),
			want: true,
		},
		{
			name: "different regex",
			m1:   Regex(regexp.MustCompile(`/foo/.*`)),
			m2:   Regex(regexp.MustCompile(`/bar/.*`)),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m1.Equal(tc.m2))
		})
	}
}
