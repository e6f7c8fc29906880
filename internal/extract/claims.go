package extract

import (
	"context"
	"strings"

	"github.com/nsharda/veridia/internal/annotate"
	"github.com/nsharda/veridia/internal/model"
)

// ClaimExtractor derives verifiable claims and named entities from text
// using an external annotator.
type ClaimExtractor struct {
	annotator annotate.Annotator
}

// NewClaimExtractor creates a new claim extractor.
func NewClaimExtractor(annotator annotate.Annotator) *ClaimExtractor {
	return &ClaimExtractor{annotator: annotator}
}

// Entities collects all named entities in the text grouped by type label,
// preserving first-seen order per type. Duplicates are kept.
func (e *ClaimExtractor) Entities(ctx context.Context, text string) (model.EntityBag, error) {
	sentences, err := e.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	bag := model.EntityBag{}
	for _, sent := range sentences {
		for _, ent := range sent.Entities {
			if ent.Label == "" || ent.Text == "" {
				continue
			}
			bag.Add(ent.Label, ent.Text)
		}
	}
	return bag, nil
}

// Claims extracts claims from the text, one pass per sentence:
//
//   - Track the most recently seen subject token, verb token and
//     object-or-attribute token (single slot each; a later match
//     overwrites an earlier one, so multi-clause sentences collapse
//     to their last clause). If subject and verb are both present,
//     emit "subject verb [object]".
//   - If the sentence contains any named entity, also emit the full
//     sentence text, unless already present verbatim.
//
// Sentences with neither contribute nothing. The result is deduplicated
// in extraction order.
func (e *ClaimExtractor) Claims(ctx context.Context, text string) ([]model.Claim, error) {
	sentences, err := e.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	var claims []model.Claim
	seen := make(map[string]bool)

	add := func(c model.Claim) {
		if c.Text == "" || seen[c.Text] {
			return
		}
		seen[c.Text] = true
		claims = append(claims, c)
	}

	for i, sent := range sentences {
		var subj, verb, obj string
		for _, tok := range sent.Tokens {
			switch {
			case strings.Contains(tok.Dep, "subj"):
				subj = tok.Text
			case tok.POS == "VERB":
				verb = tok.Text
			case strings.Contains(tok.Dep, "obj") || tok.Dep == "attr":
				obj = tok.Text
			}
		}

		if subj != "" && verb != "" {
			claimText := subj + " " + verb
			if obj != "" {
				claimText += " " + obj
			}
			add(model.Claim{Text: strings.TrimSpace(claimText), Source: "svo", Sentence: i})
		}

		// Sentences with entities are verifiable even when they do not
		// fit a strict SVO shape, so keep the whole sentence too.
		if len(sent.Entities) > 0 {
			add(model.Claim{Text: strings.TrimSpace(sent.Text), Source: "sentence", Sentence: i})
		}
	}

	return claims, nil
}
