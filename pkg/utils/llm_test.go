package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddingDimensionsFollowProvider(t *testing.T) {
	t.Setenv("EMBEDDING_DIM", "")

	t.Setenv("LLM_PROVIDER", "gemini")
	assert.Equal(t, 768, EmbeddingDimensions())

	t.Setenv("LLM_PROVIDER", "openai")
	assert.Equal(t, 1536, EmbeddingDimensions())

	// Unset provider falls back to gemini, the default provider.
	t.Setenv("LLM_PROVIDER", "")
	assert.Equal(t, 768, EmbeddingDimensions())

	// Explicit override wins regardless of provider.
	t.Setenv("EMBEDDING_DIM", "3072")
	assert.Equal(t, 3072, EmbeddingDimensions())
}

// Each provider's vector size has to agree with the column width the
// migration creates for it, or every insert would be rejected.
func TestProviderVectorSizesMatchColumn(t *testing.T) {
	t.Setenv("EMBEDDING_DIM", "")

	t.Setenv("LLM_PROVIDER", "openai")
	openaiClient := NewOpenAIClient("test-key", "")
	assert.Equal(t, EmbeddingDimensions(), openaiClient.Dimensions())

	t.Setenv("LLM_PROVIDER", "gemini")
	geminiClient := &GeminiClient{embeddingModel: "text-embedding-004"}
	assert.Equal(t, EmbeddingDimensions(), geminiClient.Dimensions())
}
