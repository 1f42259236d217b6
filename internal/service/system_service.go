package service

import (
	"context"
	"time"

	"law-agent-be/internal/dto"
	"law-agent-be/pkg/legal"

	"github.com/redis/go-redis/v9"
)

const appVersion = "1.0.0"

type ISystemService interface {
	Health(ctx context.Context) *dto.HealthResponse
	Info(ctx context.Context) *dto.SystemInfoResponse
}

type systemService struct {
	rdb            *redis.Client
	grokConfigured bool
	dbConfigured   bool
}

func NewSystemService(rdb *redis.Client, grokConfigured, dbConfigured bool) ISystemService {
	return &systemService{
		rdb:            rdb,
		grokConfigured: grokConfigured,
		dbConfigured:   dbConfigured,
	}
}

// Health reports overall liveness. A degraded component (Redis down,
// Grok unconfigured) never makes the service unhealthy: the pipeline
// keeps answering from local fallbacks.
func (s *systemService) Health(ctx context.Context) *dto.HealthResponse {
	components := map[string]string{
		"classifier":  "ok",
		"synthesizer": "ok",
		"glossary":    "ok",
	}

	components["redis"] = "disabled"
	if s.rdb != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.rdb.Ping(pingCtx).Err(); err != nil {
			components["redis"] = "degraded: " + err.Error()
		} else {
			components["redis"] = "ok"
		}
	}

	components["grok"] = "not_configured"
	if s.grokConfigured {
		components["grok"] = "ok"
	}

	components["database"] = "disabled"
	if s.dbConfigured {
		components["database"] = "ok"
	}

	return &dto.HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Components: components,
	}
}

func (s *systemService) Info(_ context.Context) *dto.SystemInfoResponse {
	domains := make([]string, 0, len(legal.Domains))
	for _, d := range legal.Domains {
		domains = append(domains, string(d))
	}

	return &dto.SystemInfoResponse{
		Version: appVersion,
		Components: map[string]string{
			"classifier":  "lexical keyword scorer with policy weighting",
			"synthesizer": "template renderer with LLM fallback",
			"glossary":    "static legal term index",
			"sessions":    "redis with in-process fallback",
		},
		SupportedDomains: domains,
		SupportedUserTypes: []string{
			string(legal.UserTypeCommonPerson),
			string(legal.UserTypeLawFirm),
			string(legal.UserTypeLegalProfessional),
		},
	}
}
