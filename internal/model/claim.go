package model

// Entity type labels as produced by the annotator.
const (
	EntityPerson = "PERSON"
	EntityOrg    = "ORG"
	EntityGPE    = "GPE"
)

// EntityBag maps an entity-type label to the entity surface strings found
// in a text, in first-seen order. Duplicates within a type are kept:
// first-seen order is informative for relevance ranking.
type EntityBag map[string][]string

// Add appends a surface string under the given label.
func (b EntityBag) Add(label, text string) {
	b[label] = append(b[label], text)
}

// First returns the first entity recorded under label, or "" if none.
func (b EntityBag) First(label string) string {
	if ents := b[label]; len(ents) > 0 {
		return ents[0]
	}
	return ""
}

// Claim represents one verifiable assertion derived from a sentence:
// either a compact subject-verb-object rendering or the full sentence text.
type Claim struct {
	Text     string `json:"text"`
	Source   string `json:"source,omitempty"`   // "svo" or "sentence"
	Sentence int    `json:"sentence,omitempty"` // Sentence index in source (0-based)
}
