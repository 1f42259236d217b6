package glossary

import (
	"strings"

	"law-agent-be/pkg/legal"
)

// Term is one glossary entry. CommonUsage and ProfessionalUsage carry
// the same definition at two registers; Match lists the literal forms
// (term plus synonyms) the extractor scans for.
type Term struct {
	Term              string       `json:"term"`
	Definition        string       `json:"definition"`
	Domain            legal.Domain `json:"domain"`
	Complexity        string       `json:"complexity"`
	Synonyms          []string     `json:"synonyms,omitempty"`
	RelatedTerms      []string     `json:"related_terms,omitempty"`
	CommonUsage       string       `json:"common_usage"`
	ProfessionalUsage string       `json:"professional_usage"`
}

// ScoredTerm is a glossary term with its relevance against a query.
type ScoredTerm struct {
	Term
	Relevance float64 `json:"relevance"`
}

// Glossary is a static index of legal terms. Lookups are pure; the
// index is built once at process start and never mutated.
type Glossary struct {
	terms  []Term
	byName map[string]int
}

// New builds the glossary from the built-in term set.
func New() *Glossary {
	return newFromTerms(legalTerms)
}

func newFromTerms(terms []Term) *Glossary {
	byName := make(map[string]int, len(terms))
	for i, t := range terms {
		byName[strings.ToLower(t.Term)] = i
	}
	return &Glossary{terms: terms, byName: byName}
}

// Len reports how many terms are loaded.
func (g *Glossary) Len() int {
	return len(g.terms)
}

// Extract returns the terms relevant to queryText, most relevant
// first, at most maxTerms entries. Relevance is occurrence count
// scaled by phrase specificity; equal scores keep glossary insertion
// order so results are stable.
func (g *Glossary) Extract(queryText string, maxTerms int) []ScoredTerm {
	if maxTerms <= 0 {
		return nil
	}
	query := strings.ToLower(queryText)

	var matched []ScoredTerm
	for _, t := range g.terms {
		score := relevance(query, t)
		if score == 0 {
			continue
		}
		matched = append(matched, ScoredTerm{Term: t, Relevance: score})
	}

	// Insertion-order stable selection sort by descending relevance.
	for i := 0; i < len(matched); i++ {
		best := i
		for j := i + 1; j < len(matched); j++ {
			if matched[j].Relevance > matched[best].Relevance {
				best = j
			}
		}
		if best != i {
			picked := matched[best]
			copy(matched[i+1:best+1], matched[i:best])
			matched[i] = picked
		}
	}

	if len(matched) > maxTerms {
		matched = matched[:maxTerms]
	}
	return matched
}

// ExtractForDomain behaves like Extract but only considers terms of
// the given domain.
func (g *Glossary) ExtractForDomain(queryText string, domain legal.Domain, maxTerms int) []ScoredTerm {
	all := g.Extract(queryText, g.Len())
	var filtered []ScoredTerm
	for _, st := range all {
		if st.Domain == domain {
			filtered = append(filtered, st)
		}
	}
	if len(filtered) > maxTerms {
		filtered = filtered[:maxTerms]
	}
	return filtered
}

// Lookup returns the entry for an exact term name, case-insensitive.
func (g *Glossary) Lookup(term string) (Term, bool) {
	i, ok := g.byName[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return Term{}, false
	}
	return g.terms[i], true
}

// DomainTerms returns every term belonging to the given domain, in
// insertion order.
func (g *Glossary) DomainTerms(domain legal.Domain) []Term {
	var out []Term
	for _, t := range g.terms {
		if t.Domain == domain {
			out = append(out, t)
		}
	}
	return out
}

// UsageFor picks the register matching the user type: plain wording
// for common persons, the professional phrasing otherwise.
func (t Term) UsageFor(userType legal.UserType) string {
	if userType == legal.UserTypeCommonPerson {
		return t.CommonUsage
	}
	return t.ProfessionalUsage
}

func relevance(query string, t Term) float64 {
	var score float64
	score += occurrences(query, strings.ToLower(t.Term)) * specificity(t.Term)
	for _, syn := range t.Synonyms {
		score += occurrences(query, strings.ToLower(syn)) * specificity(syn) * 0.8
	}
	return score
}

func occurrences(query, needle string) float64 {
	if needle == "" {
		return 0
	}
	return float64(strings.Count(query, needle))
}

// specificity rewards longer phrases: a multi-word match says more
// about the query than a single common word.
func specificity(term string) float64 {
	words := len(strings.Fields(term))
	return 1.0 + 0.25*float64(words-1)
}
