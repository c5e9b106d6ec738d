package domain

import (
	"net/url"
	"strings"
)

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// NormalizeDomain extracts a lowercase host from a URL or bare domain and
// strips a leading "www.". Returns "" when nothing host-like is present.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimSuffix(host, ".")
	if host == "" || !strings.Contains(host, ".") {
		return ""
	}
	return host
}

// NormalizeLabel trims a status label and compresses inner whitespace.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
