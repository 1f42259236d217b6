package dto

import "law-agent-be/pkg/legal"

type GlossarySearchRequest struct {
	Query    string       `json:"query" validate:"required"`
	Domain   legal.Domain `json:"domain,omitempty"`
	MaxTerms int          `json:"max_terms,omitempty" validate:"omitempty,min=1,max=50"`
}

type GlossaryTermDTO struct {
	Term       string       `json:"term"`
	Definition string       `json:"definition"`
	Domain     legal.Domain `json:"domain"`
	Complexity string       `json:"complexity"`
	Usage      string       `json:"usage,omitempty"`
	Relevance  float64      `json:"relevance,omitempty"`
}

type GlossarySearchResponse struct {
	Terms []GlossaryTermDTO `json:"terms"`
	Count int               `json:"count"`
}

type DomainTermsResponse struct {
	Domain legal.Domain      `json:"domain"`
	Terms  []GlossaryTermDTO `json:"terms"`
	Count  int               `json:"count"`
}
