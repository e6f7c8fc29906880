package model

// SnippetRecord is one retrieved search result: the concatenated title and
// snippet text plus the source URL. Produced fresh per query, never persisted.
type SnippetRecord struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// SignalClass is the per-snippet evidence classification.
type SignalClass string

const (
	SignalConfirm    SignalClass = "confirm"
	SignalContradict SignalClass = "contradict"
	SignalNeutral    SignalClass = "neutral"
)

// SnippetSignal is the scored evidence derived from one snippet.
type SnippetSignal struct {
	Link        string      `json:"link"`
	Domain      string      `json:"domain"`
	Similarity  float64     `json:"similarity"`             // cosine, in [-1,1]
	Reliable    bool        `json:"reliable"`               // domain on the curated trust list
	Trustworthy bool        `json:"trustworthy"`            // reliable OR news-indicative domain
	Negation    bool        `json:"negation"`               // snippet contains a denial cue
	Class       SignalClass `json:"class"`
}

// Verdict is the binary verification outcome for a claim or document.
// Unverifiable claims collapse to Fake: the system is deliberately
// conservative and does not distinguish "could not verify" from "false".
type Verdict string

const (
	VerdictReal Verdict = "Real"
	VerdictFake Verdict = "Fake"
)
