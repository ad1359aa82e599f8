package api

import "strings"

// NormalizeMediaURL repairs the media URLs the backend hands out. Older
// uploads come back as bare paths, some with backslashes or doubled slashes,
// and a few records carry protocol-relative URLs from the CDN migration.
//
// Rules:
//   - empty stays empty
//   - absolute http(s) URLs pass through untouched
//   - "//host/path" becomes "https://host/path"
//   - anything else is treated as a path and joined onto base
func NormalizeMediaURL(base, raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "\\", "/")
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return FixURL(base, raw)
}

// FixURL joins a server-relative path onto base, collapsing duplicate
// slashes at the seam.
func FixURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	for strings.HasPrefix(path, "/") {
		path = strings.TrimPrefix(path, "/")
	}
	if path == "" {
		return base
	}
	return base + "/" + path
}
