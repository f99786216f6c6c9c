package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// MoodEmbedding stores the embedding of a mood checkin note for
// similarity retrieval. Postgres-only table (pgvector); the vector
// column width depends on the embedding provider, so infra.Migrate
// creates this table with raw DDL rather than from the struct tags.
type MoodEmbedding struct {
	CheckinID string `gorm:"primaryKey;column:checkin_id"`
	ProfileID string `gorm:"index"`
	Note      string
	Keywords  pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
