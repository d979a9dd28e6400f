package util

import (
	"encoding/json"
	"strings"
)

// PlaceholderImageURL is served when a stored image reference cannot be
// resolved to a usable URL.
const PlaceholderImageURL = "/placeholder-image.svg"

// SanitizeImageURL cleans a stored image reference before display. Upstream
// data quality is poor: some rows carry JSON-wrapped strings or stray quotes
// and braces. Anything that does not resolve to an http(s) URL or a rooted
// path falls back to the placeholder; a bad image is a display concern, never
// an error.
func SanitizeImageURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return PlaceholderImageURL
	}

	if strings.ContainsAny(url, `{"`) {
		var parsed string
		if err := json.Unmarshal([]byte(url), &parsed); err == nil {
			url = parsed
		} else {
			url = strings.Map(func(r rune) rune {
				switch r {
				case '"', '{', '}', '[', ']':
					return -1
				default:
					return r
				}
			}, url)
		}
	}

	url = strings.Trim(strings.TrimSpace(url), `"'`)
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "/") {
		return url
	}

	return PlaceholderImageURL
}
