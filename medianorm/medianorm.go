// Package medianorm rewrites stored media references into servable URLs.
// Older documents carry absolute localhost URLs or bare filenames from
// before uploads moved behind the /media prefix.
package medianorm

import (
	"net/url"
	"regexp"
	"strings"
)

// CanonicalHost is the public origin substituted for loopback URLs.
const CanonicalHost = "https://gedo-server-294732304552.us-central1.run.app"

const mediaPrefix = "/media/"

var bareFilenameRe = regexp.MustCompile(`(?i)^[0-9].*\.(png|jpe?g|webp|gif|svg)$`)

// Normalize applies the rewrite rules in order, first match wins. It is
// total: unparsable input falls through to the later rules unchanged.
func Normalize(input string) string {
	if input == "" {
		return input
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		if u, err := url.Parse(input); err == nil {
			host := u.Hostname()
			if host == "localhost" || host == "127.0.0.1" {
				return CanonicalHost + u.Path
			}
		}
	}

	if strings.HasPrefix(input, mediaPrefix) {
		return input
	}

	if bareFilenameRe.MatchString(input) {
		return mediaPrefix + input
	}

	return input
}
