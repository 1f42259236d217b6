package dto

import "time"

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components,omitempty"`
}

type SystemInfoResponse struct {
	Version            string            `json:"version"`
	Components         map[string]string `json:"components"`
	SupportedDomains   []string          `json:"supported_domains"`
	SupportedUserTypes []string          `json:"supported_user_types"`
}

type DomainUsageDTO struct {
	Domain        string  `json:"domain"`
	Count         int64   `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type DomainAnalyticsResponse struct {
	Domains []DomainUsageDTO `json:"domains"`
	Total   int64            `json:"total"`
}
