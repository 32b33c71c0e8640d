// Package routepath centralizes admin console route paths.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	StaticPrefix = "/static/"
	ViewsPrefix  = "/views/"
	Health       = "/healthz"
)

// View returns the fragment endpoint for a view name.
func View(name string) string {
	return ViewsPrefix + escapeSegment(name)
}

// Shell returns the bookmarkable shell URL for a view name.
func Shell(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Root
	}
	return Root + "#" + url.PathEscape(name)
}

// ViewName extracts the requested fragment from a views path. The second
// result is false when the path is outside the views prefix.
func ViewName(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, ViewsPrefix)
	if !ok {
		if path+"/" == ViewsPrefix {
			return "", true
		}
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	name, err := url.PathUnescape(rest)
	if err != nil {
		return rest, true
	}
	return name, true
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
