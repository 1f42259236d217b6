package service

import (
	"context"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/serverutils"
	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/legal/glossary"
)

type IGlossaryService interface {
	Search(ctx context.Context, request *dto.GlossarySearchRequest) (*dto.GlossarySearchResponse, error)
	GetTerm(ctx context.Context, term string) (*dto.GlossaryTermDTO, error)
	GetDomainTerms(ctx context.Context, domain string) (*dto.DomainTermsResponse, error)
}

type glossaryService struct {
	glossary *glossary.Glossary
	maxTerms int
}

func NewGlossaryService(gls *glossary.Glossary, maxTerms int) IGlossaryService {
	return &glossaryService{
		glossary: gls,
		maxTerms: maxTerms,
	}
}

func (s *glossaryService) Search(_ context.Context, request *dto.GlossarySearchRequest) (*dto.GlossarySearchResponse, error) {
	maxTerms := request.MaxTerms
	if maxTerms <= 0 {
		maxTerms = s.maxTerms
	}

	var scored []glossary.ScoredTerm
	if request.Domain != "" {
		if !request.Domain.IsValid() {
			return nil, serverutils.NewInvalidInput("unsupported domain: " + string(request.Domain))
		}
		scored = s.glossary.ExtractForDomain(request.Query, request.Domain, maxTerms)
	} else {
		scored = s.glossary.Extract(request.Query, maxTerms)
	}

	terms := make([]dto.GlossaryTermDTO, 0, len(scored))
	for _, st := range scored {
		terms = append(terms, toTermDTO(st.Term, st.Relevance))
	}

	return &dto.GlossarySearchResponse{
		Terms: terms,
		Count: len(terms),
	}, nil
}

func (s *glossaryService) GetTerm(_ context.Context, term string) (*dto.GlossaryTermDTO, error) {
	t, ok := s.glossary.Lookup(term)
	if !ok {
		return nil, serverutils.NewNotFound("glossary term not found: " + term)
	}
	out := toTermDTO(t, 0)
	return &out, nil
}

func (s *glossaryService) GetDomainTerms(_ context.Context, domain string) (*dto.DomainTermsResponse, error) {
	d := legal.Domain(domain)
	if !d.IsValid() {
		return nil, serverutils.NewInvalidInput("unsupported domain: " + domain)
	}

	domainTerms := s.glossary.DomainTerms(d)
	terms := make([]dto.GlossaryTermDTO, 0, len(domainTerms))
	for _, t := range domainTerms {
		terms = append(terms, toTermDTO(t, 0))
	}

	return &dto.DomainTermsResponse{
		Domain: d,
		Terms:  terms,
		Count:  len(terms),
	}, nil
}

func toTermDTO(t glossary.Term, relevance float64) dto.GlossaryTermDTO {
	return dto.GlossaryTermDTO{
		Term:       t.Term,
		Definition: t.Definition,
		Domain:     t.Domain,
		Complexity: t.Complexity,
		Usage:      t.CommonUsage,
		Relevance:  relevance,
	}
}
