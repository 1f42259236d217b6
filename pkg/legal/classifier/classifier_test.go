package classifier

import (
	"math"
	"testing"

	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/policy"
)

func TestClassify(t *testing.T) {
	c := New(0.3)
	snap := &policy.State{}

	tests := []struct {
		name           string
		query          string
		wantDomain     legal.Domain
		wantConfidence float64
	}{
		{
			name:           "two keywords",
			query:          "I want to file for divorce and get custody of my children",
			wantDomain:     legal.DomainFamilyLaw,
			wantConfidence: 0.7,
		},
		{
			name:           "phrase match",
			query:          "how is child support calculated",
			wantDomain:     legal.DomainFamilyLaw,
			wantConfidence: 0.5,
		},
		{
			name:           "no legal signal",
			query:          "the weather is nice today",
			wantDomain:     legal.DomainUnknown,
			wantConfidence: 0,
		},
		{
			name:           "score capped at one",
			query:          "divorce custody alimony marriage adoption",
			wantDomain:     legal.DomainFamilyLaw,
			wantConfidence: 1.0,
		},
		{
			name:           "tie falls to priority order",
			query:          "divorce arrest",
			wantDomain:     legal.DomainFamilyLaw,
			wantConfidence: 0.35,
		},
		{
			name:           "punctuation and case ignored",
			query:          "DIVORCE!!!",
			wantDomain:     legal.DomainFamilyLaw,
			wantConfidence: 0.35,
		},
		{
			name:           "criminal query",
			query:          "I was arrested and charged with a felony",
			wantDomain:     legal.DomainCriminalLaw,
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.query, legal.UserTypeCommonPerson, snap)

			if got.Domain != tt.wantDomain {
				t.Errorf("Domain = %s, want %s", got.Domain, tt.wantDomain)
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyBelowThresholdIsUnknown(t *testing.T) {
	c := New(0.4)

	got := c.Classify("divorce", legal.UserTypeCommonPerson, &policy.State{})

	if got.Domain != legal.DomainUnknown {
		t.Fatalf("Domain = %s, want %s", got.Domain, legal.DomainUnknown)
	}
	// Confidence stays the raw score, never raised to the threshold.
	if math.Abs(got.Confidence-0.35) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.35", got.Confidence)
	}
	if len(got.Candidates) != 1 {
		t.Errorf("Candidates = %d, want 1", len(got.Candidates))
	}
}

func TestClassifyPolicyWeightFlipsWinner(t *testing.T) {
	c := New(0.3)
	// Raw scores: family_law 0.7, criminal_law 0.35. Boosting criminal
	// law past the gap must flip the winner.
	snap := &policy.State{Weights: map[legal.Domain]float64{
		legal.DomainCriminalLaw: 3.0,
	}}

	got := c.Classify("divorce custody arrest", legal.UserTypeCommonPerson, snap)

	if got.Domain != legal.DomainCriminalLaw {
		t.Fatalf("Domain = %s, want %s", got.Domain, legal.DomainCriminalLaw)
	}
	// Confidence reports the winner's raw score, not the weighted one.
	if math.Abs(got.Confidence-0.35) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.35", got.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(0.3)
	snap := &policy.State{}

	first := c.Classify("tenant eviction dispute with my landlord", legal.UserTypeLawFirm, snap)
	for i := 0; i < 10; i++ {
		again := c.Classify("tenant eviction dispute with my landlord", legal.UserTypeLawFirm, snap)
		if again.Domain != first.Domain || again.Confidence != first.Confidence {
			t.Fatalf("run %d: got %s/%v, want %s/%v", i, again.Domain, again.Confidence, first.Domain, first.Confidence)
		}
	}
}
