package gnewsdecode

import (
	"net/url"
	"strings"
)

// extractArticleID pulls the opaque article identifier out of a Google News
// redirect URL. Both the /articles/<id> and /rss/.../<id> shapes are accepted;
// any query string is discarded with the rest of the URL.
func extractArticleID(sourceURL string) (string, error) {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return "", wrapDecodeError(KindInvalidURLFormat, "Invalid Google News URL format", err)
	}

	if parsed.Hostname() != "news.google.com" {
		return "", newDecodeError(KindInvalidURLFormat, "Invalid Google News URL format")
	}

	segments := strings.Split(parsed.Path, "/")
	if len(segments) < 2 {
		return "", newDecodeError(KindInvalidURLFormat, "Invalid Google News URL format")
	}

	penultimate := segments[len(segments)-2]
	if penultimate != "articles" && penultimate != "rss" {
		return "", newDecodeError(KindInvalidURLFormat, "Invalid Google News URL format")
	}

	return segments[len(segments)-1], nil
}
