// Package annotate defines the boundary to the linguistic annotator: a
// black-box service that segments text into sentences and labels tokens
// with part-of-speech and dependency tags plus named-entity spans.
package annotate

import "context"

// Token is one annotated token within a sentence.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"` // part-of-speech tag, e.g. "VERB"
	Dep  string `json:"dep"` // dependency label, e.g. "nsubj", "dobj", "attr"
}

// Entity is a named-entity span within a sentence.
type Entity struct {
	Label string `json:"label"` // e.g. "PERSON", "ORG", "GPE"
	Text  string `json:"text"`
}

// Sentence is one segmented sentence with its annotations.
type Sentence struct {
	Text     string   `json:"text"`
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// Annotator produces sentence annotations for raw text. Implementations
// must be safe for reuse across documents; they hold no per-call state.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]Sentence, error)
}
