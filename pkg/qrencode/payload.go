package qrencode

import "strings"

// NormalizeURL trims surrounding whitespace and prepends https:// when
// the link carries no scheme. Empty input stays empty.
func NormalizeURL(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		link = "https://" + link
	}
	return link
}
