package classifier

import (
	"sort"
	"strings"

	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/policy"
)

const (
	wordWeight   = 0.35
	phraseWeight = 0.5
)

// Candidate is one scored domain in the ranking.
type Candidate struct {
	Domain   legal.Domain `json:"domain"`
	Score    float64      `json:"score"`
	Weighted float64      `json:"weighted"`
}

// Result is the outcome of classifying a single query. Confidence is
// always the raw (unweighted) lexical score; the policy weights only
// influence which domain wins, never the reported certainty.
type Result struct {
	Domain     legal.Domain `json:"domain"`
	Confidence float64      `json:"confidence"`
	Candidates []Candidate  `json:"candidates,omitempty"`
}

// Classifier scores free-text queries against the keyword index. It is
// stateless and safe for concurrent use.
type Classifier struct {
	minScore float64
}

// New creates a classifier with the given minimum raw score. Queries
// whose best domain scores below minScore classify as unknown.
func New(minScore float64) *Classifier {
	return &Classifier{minScore: minScore}
}

// Classify maps query text to a domain with a confidence in [0,1].
// Deterministic for identical inputs and policy snapshot: scoring is
// purely lexical, the winner is the highest policy-weighted score, and
// ties fall to the domain listed first in legal.Domains.
func (c *Classifier) Classify(queryText string, userType legal.UserType, snap *policy.State) Result {
	_ = userType // reserved; scoring is currently user-type agnostic

	normalized := normalize(queryText)
	tokens := tokenSet(normalized)

	candidates := make([]Candidate, 0, len(legal.Domains))
	for _, domain := range legal.Domains {
		raw := scoreDomain(normalized, tokens, domainKeywords[domain])
		if raw == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Domain:   domain,
			Score:    raw,
			Weighted: raw * snap.Weight(domain),
		})
	}

	// Highest weighted score wins; equal scores keep declaration order
	// because the sort is stable over a priority-ordered slice.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weighted > candidates[j].Weighted
	})

	var bestRaw float64
	for _, cand := range candidates {
		if cand.Score > bestRaw {
			bestRaw = cand.Score
		}
	}

	// No domain clears the threshold: unknown, with confidence equal to
	// the best raw score but never above the threshold itself.
	if bestRaw < c.minScore {
		conf := bestRaw
		if conf > c.minScore {
			conf = c.minScore
		}
		return Result{Domain: legal.DomainUnknown, Confidence: conf, Candidates: candidates}
	}

	best := candidates[0]
	return Result{
		Domain:     best.Domain,
		Confidence: best.Score,
		Candidates: candidates[1:],
	}
}

func scoreDomain(normalized string, tokens map[string]struct{}, keywords []string) float64 {
	var score float64
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(normalized, kw) {
				score += phraseWeight
			}
		} else if _, ok := tokens[kw]; ok {
			score += wordWeight
		}
	}
	if score > 1 {
		score = 1
	}
	return score
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		set[tok] = struct{}{}
	}
	return set
}
