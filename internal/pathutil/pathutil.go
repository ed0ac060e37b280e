// Package pathutil provides small helpers for manipulating absolute URI paths.
// Every input is expected to start with '/' and every output is guaranteed to.
package pathutil

import "strings"

// EnsureLeadingSlash returns path prefixed with '/' unless it already is.
// An empty path becomes "/".
func EnsureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// StripComponents removes the first n '/'-delimited components from path.
// When path has n components or fewer, it returns "/".
func StripComponents(path string, n int) string {
	for ; n > 0; n-- {
		if len(path) <= 1 {
			return "/"
		}
		idx := strings.IndexByte(path[1:], '/')
		if idx < 0 {
			return "/"
		}
		path = path[idx+1:]
	}
	return path
}

// LastComponent returns the final '/'-delimited component of path, prefixed
// with '/'. The last component of "/" is "/" itself.
func LastComponent(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return "/" + path
	}
	return "/" + path[idx+1:]
}
