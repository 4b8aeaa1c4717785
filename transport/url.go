package transport

import "strings"

// JoinURL joins a base URL and a path with exactly one separator, regardless
// of trailing slashes on the base or leading slashes on the path. An empty
// base returns the path unchanged.
func JoinURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// isAbsoluteURL reports whether the path already carries a scheme.
func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
