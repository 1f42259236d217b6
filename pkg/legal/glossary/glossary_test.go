package glossary

import (
	"math"
	"testing"

	"law-agent-be/pkg/legal"
)

func TestExtract(t *testing.T) {
	g := New()

	tests := []struct {
		name      string
		query     string
		maxTerms  int
		wantTerms []string
	}{
		{
			name:      "single word term",
			query:     "Who gets custody after we split up?",
			maxTerms:  5,
			wantTerms: []string{"custody"},
		},
		{
			name:      "phrase outranks single word",
			query:     "Is a plea bargain better than a trial for negligence?",
			maxTerms:  5,
			wantTerms: []string{"plea bargain", "negligence"},
		},
		{
			name:      "synonym match",
			query:     "Do I owe spousal support after separation?",
			maxTerms:  5,
			wantTerms: []string{"alimony"},
		},
		{
			name:      "equal scores keep insertion order",
			query:     "divorce alimony",
			maxTerms:  5,
			wantTerms: []string{"alimony", "divorce"},
		},
		{
			name:      "max terms truncates",
			query:     "divorce alimony eviction",
			maxTerms:  2,
			wantTerms: []string{"alimony", "divorce"},
		},
		{
			name:      "no match",
			query:     "completely unrelated text",
			maxTerms:  5,
			wantTerms: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Extract(tt.query, tt.maxTerms)

			if len(got) != len(tt.wantTerms) {
				t.Fatalf("got %d terms, want %d", len(got), len(tt.wantTerms))
			}
			for i, want := range tt.wantTerms {
				if got[i].Term.Term != want {
					t.Errorf("term[%d] = %q, want %q", i, got[i].Term.Term, want)
				}
			}
		})
	}
}

func TestExtractRelevanceScoring(t *testing.T) {
	g := New()

	got := g.Extract("Is a plea bargain possible?", 5)
	if len(got) != 1 {
		t.Fatalf("got %d terms, want 1", len(got))
	}
	// Two-word phrase: one occurrence at specificity 1.25.
	if math.Abs(got[0].Relevance-1.25) > 1e-9 {
		t.Errorf("Relevance = %v, want 1.25", got[0].Relevance)
	}

	got = g.Extract("Do I owe spousal support?", 5)
	if len(got) != 1 {
		t.Fatalf("got %d terms, want 1", len(got))
	}
	// Synonym matches are discounted: 1 * 1.25 * 0.8.
	if math.Abs(got[0].Relevance-1.0) > 1e-9 {
		t.Errorf("Relevance = %v, want 1.0", got[0].Relevance)
	}
}

func TestExtractForDomain(t *testing.T) {
	g := New()

	got := g.ExtractForDomain("custody dispute over the deed to our house", legal.DomainFamilyLaw, 5)

	if len(got) != 1 {
		t.Fatalf("got %d terms, want 1", len(got))
	}
	if got[0].Term.Term != "custody" {
		t.Errorf("term = %q, want custody", got[0].Term.Term)
	}
}

func TestLookup(t *testing.T) {
	g := New()

	term, ok := g.Lookup("  llc ")
	if !ok {
		t.Fatal("Lookup(llc) not found")
	}
	if term.Term != "LLC" {
		t.Errorf("Term = %q, want LLC", term.Term)
	}
	if term.Domain != legal.DomainCorporateLaw {
		t.Errorf("Domain = %s, want %s", term.Domain, legal.DomainCorporateLaw)
	}

	if _, ok := g.Lookup("habeas corpus"); ok {
		t.Error("Lookup(habeas corpus) = found, want missing")
	}
}

func TestDomainTerms(t *testing.T) {
	g := New()

	terms := g.DomainTerms(legal.DomainFamilyLaw)
	if len(terms) == 0 {
		t.Fatal("no family law terms")
	}
	for _, term := range terms {
		if term.Domain != legal.DomainFamilyLaw {
			t.Errorf("term %q has domain %s", term.Term, term.Domain)
		}
	}
}

func TestUsageFor(t *testing.T) {
	g := New()

	term, ok := g.Lookup("custody")
	if !ok {
		t.Fatal("custody not found")
	}

	common := term.UsageFor(legal.UserTypeCommonPerson)
	pro := term.UsageFor(legal.UserTypeLegalProfessional)

	if common == "" || pro == "" {
		t.Fatal("usage strings must not be empty")
	}
	if common == pro {
		t.Error("common and professional usage should differ in register")
	}
}
