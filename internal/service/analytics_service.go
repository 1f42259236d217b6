package service

import (
	"context"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/repository/contract"
)

type IAnalyticsService interface {
	DomainUsage(ctx context.Context) (*dto.DomainAnalyticsResponse, error)
}

type analyticsService struct {
	analytics contract.IAnalyticsRepository
}

func NewAnalyticsService(analytics contract.IAnalyticsRepository) IAnalyticsService {
	return &analyticsService{analytics: analytics}
}

func (s *analyticsService) DomainUsage(ctx context.Context) (*dto.DomainAnalyticsResponse, error) {
	rows, err := s.analytics.DomainUsage(ctx)
	if err != nil {
		return nil, err
	}

	domains := make([]dto.DomainUsageDTO, 0, len(rows))
	var total int64
	for _, row := range rows {
		domains = append(domains, dto.DomainUsageDTO{
			Domain:        row.Domain,
			Count:         row.Count,
			AvgConfidence: row.AvgConfidence,
		})
		total += row.Count
	}

	return &dto.DomainAnalyticsResponse{
		Domains: domains,
		Total:   total,
	}, nil
}
