package response_models

type MoodAnalysisResponse struct {
	Sentiment  string   `json:"sentiment"`
	Score      float64  `json:"score"`
	Energy     string   `json:"energy"`
	Keywords   []string `json:"keywords"`
	Suggestion string   `json:"suggestion"`
	Language   string   `json:"language"`
}

type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

type WellnessReport struct {
	GeneratedAt        int64                   `json:"generated_at"`
	Profile            ProfileResponse         `json:"profile"`
	Meditation         SessionStatsResponse    `json:"meditation"`
	Workout            SessionStatsResponse    `json:"workout"`
	Progress           ProgressSummaryResponse `json:"progress"`
	Level              LevelResponse           `json:"level"`
}
