package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) AnalyzeMood(ctx context.Context, text, language string, pastNotes []string) (*MoodAnalysis, error) {
	prompt := buildMoodPrompt(text, language, pastNotes)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a wellness assistant analyzing mood journal entries. Respond with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response")
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("openai: bad analysis payload: %w", err)
	}
	return &analysis, nil
}

func (c *OpenAIClient) Chat(ctx context.Context, message, conversationID string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		User:  conversationID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a supportive wellness coach. Keep answers short and practical. Never give medical diagnoses."},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) Dimensions() int {
	return openAIEmbeddingDims
}

func buildMoodPrompt(text, language string, pastNotes []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Analyze the mood of the following journal entry (language %q).
Return JSON only, matching this schema exactly:
%s

Score is -1.0 (very negative) to 1.0 (very positive). Keywords are 1-5
short phrases from the entry. Suggestion is one actionable wellness tip.

Entry:
%s
`, language, moodAnalysisSchema, text)

	if len(pastNotes) > 0 {
		b.WriteString("\nSimilar past entries from the same user, for context only:\n")
		for _, note := range pastNotes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}
