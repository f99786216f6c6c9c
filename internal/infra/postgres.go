package infra

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
	"wellspring/pkg/utils"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

// Migrate creates all application tables. The mood_embeddings table needs
// the pgvector extension and is skipped when the extension is missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Identity{},
		&db_models.Profile{},
		&db_models.Session{},
		&db_models.MoodCheckin{},
		&db_models.Goal{},
		&db_models.Badge{},
		&db_models.Celebration{},
		&db_models.AudioTrack{},
		&db_models.AudioFeedback{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			log.Printf("pgvector extension unavailable, mood embeddings disabled: %v", err)
			return nil
		}

		// The vector column width must match the configured embedding
		// provider (gemini text-embedding-004 is 768, openai
		// text-embedding-3-small is 1536), so the table is created by
		// hand instead of through AutoMigrate.
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS mood_embeddings (
			checkin_id text PRIMARY KEY,
			profile_id text,
			note text,
			keywords text[],
			embedding vector(%d),
			created_at timestamptz
		)`, utils.EmbeddingDimensions())
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
		return db.Exec("CREATE INDEX IF NOT EXISTS idx_mood_embeddings_profile_id ON mood_embeddings (profile_id)").Error
	}

	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
