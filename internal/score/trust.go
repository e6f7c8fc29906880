package score

import (
	"net/url"
	"strings"
)

// TrustClassifier decides whether a source domain counts as trustworthy
// evidence. Reliability is substring containment against a curated list,
// which deliberately permits subdomain matches (news.bbc.com matches
// bbc.com) at the cost of rare coincidental false positives.
type TrustClassifier struct {
	reliableDomains []string
	trustHints      []string
}

// NewTrustClassifier creates a classifier over the given domain list and
// news-indicative hint substrings.
func NewTrustClassifier(reliableDomains, trustHints []string) *TrustClassifier {
	return &TrustClassifier{
		reliableDomains: reliableDomains,
		trustHints:      trustHints,
	}
}

// Domain extracts the lowercased network location from a link, without
// the port. Returns "" for unparseable links.
func Domain(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// IsReliable reports whether any curated domain token is a substring of
// the given domain.
func (t *TrustClassifier) IsReliable(domain string) bool {
	for _, rd := range t.reliableDomains {
		if rd != "" && strings.Contains(domain, rd) {
			return true
		}
	}
	return false
}

// IsTrustworthy reports whether the domain is reliable or carries a
// news-indicative hint substring ("news", "report", "press").
func (t *TrustClassifier) IsTrustworthy(domain string) bool {
	if t.IsReliable(domain) {
		return true
	}
	for _, hint := range t.trustHints {
		if hint != "" && strings.Contains(domain, hint) {
			return true
		}
	}
	return false
}
