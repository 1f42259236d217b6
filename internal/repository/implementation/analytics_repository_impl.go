package implementation

import (
	"context"

	"law-agent-be/internal/model"
	"law-agent-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) contract.IAnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) RecordInteraction(ctx context.Context, interaction *model.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *AnalyticsRepositoryImpl) DomainUsage(ctx context.Context) ([]contract.DomainUsage, error) {
	var rows []contract.DomainUsage
	err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Select("domain, count(*) as count, avg(confidence) as avg_confidence").
		Group("domain").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
