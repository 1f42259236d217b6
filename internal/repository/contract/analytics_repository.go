package contract

import (
	"context"

	"law-agent-be/internal/model"
)

// DomainUsage aggregates recorded interactions per legal domain.
type DomainUsage struct {
	Domain        string
	Count         int64
	AvgConfidence float64
}

type IAnalyticsRepository interface {
	RecordInteraction(ctx context.Context, interaction *model.Interaction) error
	DomainUsage(ctx context.Context) ([]DomainUsage, error)
}
