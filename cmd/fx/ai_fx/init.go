package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wellspring/cmd/fx/wellness_fx"
	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient,
	ProvideEmbeddingClient,
	provideAIService,
	provideAIController)

// LLMConfig holds configuration for the language model provider.
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideLLMClient creates the chat/analysis client based on environment
// variables. LLM_PROVIDER selects openai or gemini.
func ProvideLLMClient() (utils.LLMClientInterface, error) {
	config := getLLMConfig()

	log.Printf("Initializing %s LLM client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideEmbeddingClient reuses the same provider configuration for
// embeddings, and refuses to start when the provider's vector size does
// not match the mood_embeddings column.
func ProvideEmbeddingClient(llm utils.LLMClientInterface) (utils.EmbeddingClientInterface, error) {
	embedder, ok := llm.(utils.EmbeddingClientInterface)
	if !ok {
		return nil, fmt.Errorf("configured LLM provider does not support embeddings")
	}
	if got, want := embedder.Dimensions(), utils.EmbeddingDimensions(); got != want {
		return nil, fmt.Errorf("embedding dimension mismatch: provider returns %d-dim vectors, mood_embeddings column is vector(%d)", got, want)
	}
	return embedder, nil
}

func provideAIService(
	llm utils.LLMClientInterface,
	embedder utils.EmbeddingClientInterface,
	embeddingRepo repositories.MoodEmbeddingRepository,
	profileRepo repositories.ProfileRepository,
	sessions *wellness_fx.SessionSet,
	progress services.ProgressServiceInterface,
	gamification services.GamificationServiceInterface,
	logger *logger.Logger,
) services.AIServiceInterface {
	return services.NewAIService(
		llm,
		embedder,
		embeddingRepo,
		profileRepo,
		sessions.Meditation,
		sessions.Workout,
		progress,
		gamification,
		logger,
	)
}

func provideAIController(aiService services.AIServiceInterface) *controllers.AIController {
	return controllers.NewAIController(aiService)
}

// getLLMConfig reads configuration from environment variables.
func getLLMConfig() LLMConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
