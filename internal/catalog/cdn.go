package catalog

import "strings"

// FullIcon rewrites a relative icon path under prefix. Absolute URLs and
// empty paths are returned unchanged.
func FullIcon(prefix, url string) string {
	u := strings.TrimSpace(url)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return prefix + strings.TrimLeft(u, "/")
}
