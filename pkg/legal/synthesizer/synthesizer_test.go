package synthesizer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/legal/classifier"
	"law-agent-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (p *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func (p *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func testConfig() Config {
	return Config{
		SectionBudget: 400,
		TotalBudget:   800,
		LowConfidence: 0.3,
		LLMTimeout:    time.Second,
	}
}

func highConfidence(domain legal.Domain) classifier.Result {
	return classifier.Result{Domain: domain, Confidence: 0.9}
}

func TestSynthesizeEveryDomainFitsBudget(t *testing.T) {
	s := New(testConfig(), nil, nil)

	for _, domain := range legal.Domains {
		t.Run(string(domain), func(t *testing.T) {
			resp := s.Synthesize(context.Background(), domain, "test query", highConfidence(domain), legal.UserTypeCommonPerson)

			if resp.Source != SourceTemplate {
				t.Errorf("Source = %q, want %q", resp.Source, SourceTemplate)
			}
			if len(resp.Text) > 800 {
				t.Errorf("Text length = %d, exceeds total budget", len(resp.Text))
			}
			if len(resp.Sections) == 0 || resp.Sections[0] != SectionLegalAnalysis {
				t.Errorf("Sections = %v, want Legal Analysis first", resp.Sections)
			}
			if !strings.HasPrefix(resp.Text, "**"+SectionLegalAnalysis+":**") {
				t.Errorf("Text does not start with analysis header: %q", resp.Text[:40])
			}
		})
	}
}

func TestSynthesizeUnknownDomainUsesGeneric(t *testing.T) {
	s := New(testConfig(), nil, nil)

	resp := s.Synthesize(context.Background(), legal.DomainUnknown, "gibberish", highConfidence(legal.DomainUnknown), legal.UserTypeCommonPerson)

	if resp.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", resp.Source, SourceFallback)
	}
	if resp.Text == "" {
		t.Error("generic response must not be empty")
	}
}

func TestSynthesizeDropsTimelineFirst(t *testing.T) {
	// Render once with an unconstrained ceiling to learn the full
	// length, then shrink the ceiling just below it: the Timeline
	// section and the numeric fields must be the first to go.
	wide := New(Config{SectionBudget: 4000, TotalBudget: 100000, LowConfidence: 0, LLMTimeout: time.Second}, nil, nil)
	full := wide.Synthesize(context.Background(), legal.DomainFamilyLaw, "q", highConfidence(legal.DomainFamilyLaw), legal.UserTypeCommonPerson)

	if !contains(full.Sections, SectionTimeline) {
		t.Fatal("full render should carry a Timeline section")
	}
	if full.Timeline == "" || full.EstimatedCost == "" {
		t.Fatal("full render should carry the numeric fields")
	}

	tight := New(Config{SectionBudget: 4000, TotalBudget: len(full.Text) - 1, LowConfidence: 0, LLMTimeout: time.Second}, nil, nil)
	resp := tight.Synthesize(context.Background(), legal.DomainFamilyLaw, "q", highConfidence(legal.DomainFamilyLaw), legal.UserTypeCommonPerson)

	if contains(resp.Sections, SectionTimeline) {
		t.Error("Timeline should be dropped first")
	}
	if !contains(resp.Sections, SectionNextSteps) {
		t.Error("Next Steps should survive the first drop")
	}
	if resp.Timeline != "" || resp.EstimatedCost != "" || resp.SuccessRate != 0 {
		t.Error("numeric fields must go with the Timeline section")
	}
	if len(resp.Text) > len(full.Text)-1 {
		t.Errorf("Text length = %d, exceeds ceiling %d", len(resp.Text), len(full.Text)-1)
	}
}

func TestSynthesizeTinyBudgetKeepsAnalysisOnly(t *testing.T) {
	s := New(Config{SectionBudget: 400, TotalBudget: 120, LowConfidence: 0, LLMTimeout: time.Second}, nil, nil)

	resp := s.Synthesize(context.Background(), legal.DomainCriminalLaw, "q", highConfidence(legal.DomainCriminalLaw), legal.UserTypeCommonPerson)

	if len(resp.Sections) != 1 || resp.Sections[0] != SectionLegalAnalysis {
		t.Fatalf("Sections = %v, want only Legal Analysis", resp.Sections)
	}
	if len(resp.Text) > 120 {
		t.Errorf("Text length = %d, exceeds ceiling 120", len(resp.Text))
	}
	if resp.NextSteps != nil {
		t.Error("NextSteps must be empty once the section is dropped")
	}
}

func TestSynthesizeLowConfidenceDelegates(t *testing.T) {
	provider := &stubProvider{response: "**Legal Analysis:**\nThe model says so."}
	s := New(testConfig(), provider, nil)

	low := classifier.Result{Domain: legal.DomainTaxLaw, Confidence: 0.1}
	resp := s.Synthesize(context.Background(), legal.DomainTaxLaw, "odd tax question", low, legal.UserTypeCommonPerson)

	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
	if resp.Source != SourceGrok {
		t.Errorf("Source = %q, want %q", resp.Source, SourceGrok)
	}
	if !contains(resp.Sections, SectionLegalAnalysis) {
		t.Errorf("Sections = %v, want Legal Analysis detected", resp.Sections)
	}
}

func TestSynthesizeHighConfidenceSkipsLLM(t *testing.T) {
	provider := &stubProvider{response: "should not be used"}
	s := New(testConfig(), provider, nil)

	resp := s.Synthesize(context.Background(), legal.DomainTaxLaw, "plain tax question", highConfidence(legal.DomainTaxLaw), legal.UserTypeCommonPerson)

	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls)
	}
	if resp.Source != SourceTemplate {
		t.Errorf("Source = %q, want %q", resp.Source, SourceTemplate)
	}
}

func TestSynthesizeLLMFailureFallsBackToTemplate(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"transport error", &stubProvider{err: errors.New("connection refused")}},
		{"unavailable", &stubProvider{err: llm.ErrUnavailable}},
		{"empty response", &stubProvider{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), tt.provider, nil)

			low := classifier.Result{Domain: legal.DomainFamilyLaw, Confidence: 0.1}
			resp := s.Synthesize(context.Background(), legal.DomainFamilyLaw, "q", low, legal.UserTypeCommonPerson)

			if resp.Source != SourceTemplate {
				t.Errorf("Source = %q, want %q", resp.Source, SourceTemplate)
			}
			if resp.Text == "" {
				t.Error("fallback must produce a response")
			}
		})
	}
}

func TestTrimToBoundary(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Short text.", 100, "Short text."},
		{"sentence boundary", "First sentence. Second sentence that runs long.", 30, "First sentence."},
		{"word boundary", "no sentence ends here at all", 15, "no sentence"},
		{"zero limit", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimToBoundary(tt.in, tt.limit); got != tt.want {
				t.Errorf("trimToBoundary(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
