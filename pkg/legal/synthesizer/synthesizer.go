package synthesizer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/legal/classifier"
	"law-agent-be/pkg/llm"
)

// Section names as they appear in rendered responses.
const (
	SectionLegalAnalysis = "Legal Analysis"
	SectionApplicableLaw = "Applicable Law"
	SectionNextSteps     = "Next Steps"
	SectionTimeline      = "Timeline"
)

// Source values describe how a response was produced.
const (
	SourceTemplate = "template"
	SourceGrok     = "grok"
	SourceFallback = "generic_fallback"
)

// Response is one rendered answer. Numeric fields are present only
// when the domain template defines them and the length budget allowed
// keeping them.
type Response struct {
	Text          string   `json:"text"`
	Sections      []string `json:"sections"`
	NextSteps     []string `json:"next_steps,omitempty"`
	Timeline      string   `json:"timeline,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	SuccessRate   float64  `json:"success_rate,omitempty"`
	Source        string   `json:"source"`
}

// Config carries the synthesis budgets and thresholds.
type Config struct {
	SectionBudget int           // max chars per section
	TotalBudget   int           // max chars for the whole rendered text
	LowConfidence float64       // below this, delegate to the LLM
	LLMTimeout    time.Duration // budget for one LLM call
}

// Synthesizer renders structured responses from domain templates,
// delegating to the LLM backend only for low-confidence queries. It
// never propagates an LLM failure: every path returns a valid
// structured response.
type Synthesizer struct {
	cfg      Config
	provider llm.Provider
	logger   *log.Logger
}

func New(cfg Config, provider llm.Provider, logger *log.Logger) *Synthesizer {
	return &Synthesizer{cfg: cfg, provider: provider, logger: logger}
}

// Synthesize builds the response for one classified query.
func (s *Synthesizer) Synthesize(ctx context.Context, domain legal.Domain, queryText string, classification classifier.Result, userType legal.UserType) Response {
	if classification.Confidence < s.cfg.LowConfidence && s.provider != nil {
		if resp, ok := s.delegate(ctx, domain, queryText); ok {
			return resp
		}
		// LLM failed or timed out: fall through to the local templates
		// so the caller always gets a well-formed answer.
	}

	tpl, ok := domainTemplates[domain]
	if !ok {
		return s.render(genericTemplate, SourceFallback)
	}
	return s.render(tpl, SourceTemplate)
}

// Generic returns the generic fallback response, used by the
// orchestrator when a component faults mid-request.
func (s *Synthesizer) Generic() Response {
	return s.render(genericTemplate, SourceFallback)
}

func (s *Synthesizer) delegate(ctx context.Context, domain legal.Domain, queryText string) (Response, bool) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Legal query (%s): %s\n\nAnswer with sections titled %q, %q and %q. Be concise.",
		domain, queryText, SectionLegalAnalysis, SectionApplicableLaw, SectionNextSteps,
	)
	text, err := s.provider.Generate(callCtx, prompt, llm.WithTemperature(0.3))
	if err != nil || strings.TrimSpace(text) == "" {
		if s.logger != nil {
			s.logger.Printf("[SYNTH] llm delegate failed, using local template: %v", err)
		}
		return Response{}, false
	}

	text = trimToBoundary(strings.TrimSpace(text), s.cfg.TotalBudget)
	return Response{
		Text:     text,
		Sections: detectSections(text),
		Source:   SourceGrok,
	}, true
}

type renderedSection struct {
	name     string
	body     string
	optional bool
}

func (s *Synthesizer) render(tpl Template, source string) Response {
	sections := []renderedSection{
		{SectionLegalAnalysis, trimToBoundary(tpl.Analysis, s.cfg.SectionBudget), false},
	}
	if tpl.ApplicableLaw != "" {
		sections = append(sections, renderedSection{SectionApplicableLaw, trimToBoundary(tpl.ApplicableLaw, s.cfg.SectionBudget), true})
	}
	if len(tpl.NextSteps) > 0 {
		sections = append(sections, renderedSection{SectionNextSteps, trimToBoundary(renderSteps(tpl.NextSteps), s.cfg.SectionBudget), true})
	}
	if tpl.Timeline != "" {
		sections = append(sections, renderedSection{SectionTimeline, trimToBoundary(tpl.Timeline, s.cfg.SectionBudget), true})
	}

	withNumbers := true

	// Drop optional sections whole, lowest priority first, until the
	// rendered text fits the total ceiling. Priority order of loss:
	// Timeline (with the numeric fields), Next Steps, Applicable Law.
	// Legal Analysis is last and gets trimmed rather than dropped.
	for {
		text := compose(sections)
		if len(text) <= s.cfg.TotalBudget {
			break
		}
		if i := indexOf(sections, SectionTimeline); i >= 0 {
			sections = append(sections[:i], sections[i+1:]...)
			withNumbers = false
			continue
		}
		if i := indexOf(sections, SectionNextSteps); i >= 0 {
			sections = append(sections[:i], sections[i+1:]...)
			continue
		}
		if i := indexOf(sections, SectionApplicableLaw); i >= 0 {
			sections = append(sections[:i], sections[i+1:]...)
			continue
		}
		// Only Legal Analysis left: trim it into the ceiling.
		overhead := len(compose(sections)) - len(sections[0].body)
		sections[0].body = trimToBoundary(sections[0].body, s.cfg.TotalBudget-overhead)
		break
	}

	resp := Response{
		Text:   compose(sections),
		Source: source,
	}
	for _, sec := range sections {
		resp.Sections = append(resp.Sections, sec.name)
	}
	if contains(resp.Sections, SectionNextSteps) {
		resp.NextSteps = tpl.NextSteps
	}
	if withNumbers && contains(resp.Sections, SectionTimeline) {
		resp.Timeline = tpl.Timeline
		resp.EstimatedCost = tpl.EstimatedCost
		resp.SuccessRate = tpl.SuccessRate
	}
	return resp
}

func renderSteps(steps []string) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}

func compose(sections []renderedSection) string {
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**%s:**\n%s", sec.name, sec.body)
	}
	return b.String()
}

func indexOf(sections []renderedSection, name string) int {
	for i, sec := range sections {
		if sec.name == name {
			return i
		}
	}
	return -1
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// trimToBoundary cuts s to at most limit characters, preferring a
// sentence end and falling back to a word boundary.
func trimToBoundary(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if i := strings.LastIndex(cut, ". "); i > 0 {
		return cut[:i+1]
	}
	if i := strings.LastIndexByte(cut, '.'); i > 0 {
		return cut[:i+1]
	}
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		return cut[:i]
	}
	return cut
}

func detectSections(text string) []string {
	var found []string
	for _, name := range []string{SectionLegalAnalysis, SectionApplicableLaw, SectionNextSteps, SectionTimeline} {
		if strings.Contains(text, name) {
			found = append(found, name)
		}
	}
	if len(found) == 0 {
		found = []string{SectionLegalAnalysis}
	}
	return found
}
