package content

import (
	"net/url"
	"strings"
)

// platformHosts maps known media host suffixes to platform tags
var platformHosts = map[string]string{
	"youtube.com":   "youtube",
	"youtu.be":      "youtube",
	"vimeo.com":     "vimeo",
	"instagram.com": "instagram",
	"tiktok.com":    "tiktok",
	"twitter.com":   "twitter",
	"x.com":         "twitter",
	"facebook.com":  "facebook",
	"fb.watch":      "facebook",
	"hudl.com":      "hudl",
}

// DetectPlatform derives a platform tag from a content URL's host.
// Unrecognized hosts get the tag "other".
func DetectPlatform(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "other"
	}

	host := strings.ToLower(parsed.Hostname())
	for suffix, platform := range platformHosts {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return platform
		}
	}
	return "other"
}
