package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type MoodEmbeddingRepository interface {
	Insert(embedding db_models.MoodEmbedding) error
	NearestByVector(profileID string, vector pgvector.Vector, limit int) ([]db_models.MoodEmbedding, error)
}

type moodEmbeddingRepository struct {
	db *gorm.DB
}

func NewMoodEmbeddingRepository(db *gorm.DB) MoodEmbeddingRepository {
	return &moodEmbeddingRepository{db: db}
}

func (r *moodEmbeddingRepository) Insert(embedding db_models.MoodEmbedding) error {
	return r.db.Create(&embedding).Error
}

// NearestByVector retrieves the caller's most similar past checkin notes by
// cosine distance. Postgres + pgvector only.
func (r *moodEmbeddingRepository) NearestByVector(profileID string, vector pgvector.Vector, limit int) ([]db_models.MoodEmbedding, error) {
	var results []db_models.MoodEmbedding

	query := `
        SELECT * FROM mood_embeddings
        WHERE profile_id = $1
          AND (1 - (embedding <=> $2)) > 0.7
        ORDER BY embedding <=> $2
        LIMIT $3
    `

	err := r.db.Raw(query, profileID, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
