package github

import (
	"regexp"
	"strings"
)

// nextLinkPattern extracts the URL from one RFC 5988 Link header entry
// of the form `<url>; rel="next"`.
var nextLinkPattern = regexp.MustCompile(`^<([^>]*)>\s*;\s*rel="next"$`)

// nextPageURL returns the rel="next" URL from a Link header, or the
// empty string when no next page is advertised.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func nextPageURL(header string) string {
	if header == "" {
		return ""
	}

	for _, entry := range strings.Split(header, ",") {
		if m := nextLinkPattern.FindStringSubmatch(strings.TrimSpace(entry)); m != nil {
			return m[1]
		}
	}

	return ""
}
