package model

import "time"

// ClaimResult holds the verdict for a single claim together with the
// evidence counts behind it, so every verdict stays explainable.
type ClaimResult struct {
	Claim       Claim           `json:"claim"`
	Verdict     Verdict         `json:"verdict"`
	Confirms    int             `json:"confirms"`
	Contradicts int             `json:"contradicts"`
	Query       string          `json:"query,omitempty"`
	NoEvidence  bool            `json:"no_evidence,omitempty"` // provider returned nothing usable
	Signals     []SnippetSignal `json:"signals,omitempty"`
}

// Report is the complete verification result for one input text.
type Report struct {
	Text       string        `json:"text"`
	VerifiedAt time.Time     `json:"verified_at"`
	Entities   EntityBag     `json:"entities,omitempty"`
	Claims     []Claim       `json:"claims"`
	Results    []ClaimResult `json:"results"`
	Verdict    Verdict       `json:"verdict"`

	// Skipped counts claims never evaluated because an earlier claim
	// already resolved the document to Fake.
	Skipped int `json:"skipped,omitempty"`

	// Degraded is set when the embedder was unavailable and no scoring
	// was attempted; the verdict is then always Fake.
	Degraded bool `json:"degraded,omitempty"`

	// Sources holds optional accessibility checks of evidence URLs.
	// Informational only: it never affects the verdict.
	Sources []SourceCheck `json:"sources,omitempty"`
}

// SourceCheck records whether an evidence URL was reachable.
type SourceCheck struct {
	URL          string `json:"url"`
	IsAccessible bool   `json:"is_accessible"`
	StatusCode   int    `json:"status_code,omitempty"`
	Disallowed   bool   `json:"disallowed,omitempty"` // robots.txt forbids fetching
	Error        string `json:"error,omitempty"`
}
