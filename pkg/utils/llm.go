package utils

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const (
	openAIEmbeddingDims = 1536 // text-embedding-3-small
	geminiEmbeddingDims = 768  // text-embedding-004
)

// MoodAnalysis is the structured sentiment payload produced by the LLM.
type MoodAnalysis struct {
	Sentiment  string   `json:"sentiment"`
	Score      float64  `json:"score"`
	Energy     string   `json:"energy"`
	Keywords   []string `json:"keywords"`
	Suggestion string   `json:"suggestion"`
}

// LLMClientInterface abstracts the external LLM provider. Chat is
// stateless on our side; conversation continuity is whatever the
// provider's API offers for the passed conversation id.
type LLMClientInterface interface {
	AnalyzeMood(ctx context.Context, text, language string, pastNotes []string) (*MoodAnalysis, error)
	Chat(ctx context.Context, message, conversationID string) (string, error)
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Dimensions() int
}

// EmbeddingDimensions resolves the width of the mood_embeddings vector
// column for the configured provider. EMBEDDING_DIM overrides the
// provider default; it must match what the provider actually returns.
func EmbeddingDimensions() int {
	if v := os.Getenv("EMBEDDING_DIM"); v != "" {
		if dims, err := strconv.Atoi(v); err == nil && dims > 0 {
			return dims
		}
	}
	if strings.ToLower(os.Getenv("LLM_PROVIDER")) == "openai" {
		return openAIEmbeddingDims
	}
	return geminiEmbeddingDims
}

const moodAnalysisSchema = `
{
  "sentiment": "positive|neutral|negative",
  "score": 0.0,
  "energy": "low|medium|high",
  "keywords": ["string"],
  "suggestion": "string"
}`
