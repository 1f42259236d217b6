package model

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is the analytics projection of a single query turn. It is
// written fire-and-forget after each answered query and never read back
// on the hot path.
type Interaction struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  string    `gorm:"type:text;not null;index"`
	Sequence   int       `gorm:"not null"`
	Domain     string    `gorm:"type:text;not null;index"`
	Confidence float64   `gorm:"not null"`
	Source     string    `gorm:"type:text;not null"`
	UserType   string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Interaction) TableName() string {
	return "interactions"
}
