package search

import (
	"strings"

	"github.com/nsharda/veridia/internal/model"
)

// QueryBuilder turns a claim plus its entities into a search query,
// optionally narrowing to an allow-list of sites when a known entity
// is detected.
type QueryBuilder struct {
	rules []model.SiteRule
}

// NewQueryBuilder creates a query builder with the given site rules.
func NewQueryBuilder(rules []model.SiteRule) *QueryBuilder {
	return &QueryBuilder{rules: rules}
}

// Build starts from the claim text and selects one relevant entity by
// strict precedence: first PERSON, else first ORG, else none. If that
// entity's lowercase form contains a rule's trigger substring, the rule's
// site allow-list is appended as an OR-clause. At most one rule applies.
func (q *QueryBuilder) Build(claimText string, entities model.EntityBag) string {
	query := claimText

	relevant := entities.First(model.EntityPerson)
	if relevant == "" {
		relevant = entities.First(model.EntityOrg)
	}
	if relevant == "" {
		return query
	}

	lower := strings.ToLower(relevant)
	for _, rule := range q.rules {
		if rule.Trigger == "" || !strings.Contains(lower, rule.Trigger) {
			continue
		}
		if clause := siteClause(rule.Sites); clause != "" {
			query += " " + clause
		}
		break
	}

	return query
}

// siteClause renders sites as "site:a OR site:b".
func siteClause(sites []string) string {
	parts := make([]string, 0, len(sites))
	for _, s := range sites {
		if s != "" {
			parts = append(parts, "site:"+s)
		}
	}
	return strings.Join(parts, " OR ")
}
