package memory

import (
	"context"
	"sort"
	"sync"

	"law-agent-be/internal/model"
	"law-agent-be/internal/repository/contract"
)

// AnalyticsRepository keeps interaction aggregates in process memory. It
// backs the analytics endpoints when no database connection is configured.
type AnalyticsRepository struct {
	mu    sync.Mutex
	count map[string]int64
	total map[string]float64
}

func NewAnalyticsRepository() contract.IAnalyticsRepository {
	return &AnalyticsRepository{
		count: make(map[string]int64),
		total: make(map[string]float64),
	}
}

func (r *AnalyticsRepository) RecordInteraction(_ context.Context, interaction *model.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count[interaction.Domain]++
	r.total[interaction.Domain] += interaction.Confidence
	return nil
}

func (r *AnalyticsRepository) DomainUsage(_ context.Context) ([]contract.DomainUsage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]contract.DomainUsage, 0, len(r.count))
	for domain, n := range r.count {
		rows = append(rows, contract.DomainUsage{
			Domain:        domain,
			Count:         n,
			AvgConfidence: r.total[domain] / float64(n),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Domain < rows[j].Domain
	})
	return rows, nil
}
