package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureLeadingSlash(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"empty path", "", "/"},
		{"root", "/", "/"},
		{"already absolute", "/foo", "/foo"},
		{"relative single component", "foo", "/foo"},
		{"relative multiple components", "foo/bar", "/foo/bar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EnsureLeadingSlash(tc.path))
		})
	}
}

func TestStripComponents(t *testing.T) {
	cases := []struct {
		name string
		path string
		n    int
		want string
	}{
		{"zero components", "/foo/bar", 0, "/foo/bar"},
		{"strip one", "/foo/bar", 1, "/bar"},
		{"strip two", "/foo/bar/baz", 2, "/baz"},
		{"strip all", "/foo/bar", 2, "/"},
		{"strip more than available", "/foo", 5, "/"},
		{"root", "/", 1, "/"},
		{"trailing slash", "/foo/", 1, "/"},
		{"empty middle component", "/foo//bar", 1, "//bar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripComponents(tc.path, tc.n))
		})
	}
}

func TestLastComponent(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "/"},
		{"single component", "/foo", "/foo"},
		{"two components", "/foo/bar", "/bar"},
		{"many components", "/a/b/c/d.txt", "/d.txt"},
		{"trailing slash", "/foo/bar/", "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LastComponent(tc.path))
		})
	}
}
