package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiClient implements LLMClientInterface and EmbeddingClientInterface
// using Google's Gemini models.
type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		embeddingModel: "text-embedding-004",
	}, nil
}

func (c *GeminiClient) AnalyzeMood(ctx context.Context, text, language string, pastNotes []string) (*MoodAnalysis, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)

	resp, err := m.GenerateContent(ctx, genai.Text(buildMoodPrompt(text, language, pastNotes)))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	content, err := firstTextPart(resp)
	if err != nil {
		return nil, err
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("gemini: bad analysis payload: %w", err)
	}
	return &analysis, nil
}

func (c *GeminiClient) Chat(ctx context.Context, message, conversationID string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are a supportive wellness coach. Keep answers short and practical. Never give medical diagnoses.")},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstTextPart(resp)
}

func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: %w", err)
	}
	if resp.Embedding == nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: empty response")
	}
	return pgvector.NewVector(resp.Embedding.Values), nil
}

func (c *GeminiClient) Dimensions() int {
	return geminiEmbeddingDims
}

func firstTextPart(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	if text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
