// Package urlfilter reduces a crawl to its most useful URLs: it collapses
// URLs that differ only in ids or parameter values and ranks the rest by how
// interesting they are for a security review.
package urlfilter

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var (
	numericIDPattern = regexp.MustCompile(`^\d+$`)
	uuidPattern      = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	hashPattern      = regexp.MustCompile(`^[0-9a-f]{32,64}$`)
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// trackingParams no aportan nada a la firma
var trackingParams = map[string]bool{
	"utm_source": true, "utm_medium": true, "utm_campaign": true, "utm_term": true,
	"utm_content": true, "fbclid": true, "gclid": true, "_ga": true,
}

// Signature returns the structural form of rawURL: lowercase scheme and
// host, dynamic path segments replaced by placeholders, and the sorted
// query keys without values. Unparseable input is returned trimmed.
func Signature(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	host := strings.ToLower(parsed.Hostname())
	port := parsed.Port()
	if (parsed.Scheme == "http" && port == "80") || (parsed.Scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host += ":" + port
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, seg := range segments {
		if p := placeholder(seg); p != "" {
			segments[i] = p
		}
	}
	path := "/" + strings.Join(segments, "/")

	var keys []string
	for key := range parsed.Query() {
		if trackingParams[strings.ToLower(key)] {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sig := strings.ToLower(parsed.Scheme) + "://" + host + path
	if len(keys) > 0 {
		sig += "?" + strings.Join(keys, "&")
	}
	return sig
}

// placeholder detects a dynamic segment and returns its placeholder.
func placeholder(segment string) string {
	lower := strings.ToLower(segment)
	switch {
	case segment == "":
		return ""
	case numericIDPattern.MatchString(segment):
		return "{id}"
	case uuidPattern.MatchString(lower):
		return "{uuid}"
	case hashPattern.MatchString(lower):
		return "{hash}"
	case datePattern.MatchString(segment):
		return "{date}"
	}
	return ""
}

// Collapse keeps the first URL of every signature, in input order.
func Collapse(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		sig := Signature(u)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, u)
	}
	return out
}
