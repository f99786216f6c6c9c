package request_models

type MoodAnalysisRequest struct {
	Text     string `json:"text" binding:"required,min=1,max=1000"`
	Language string `json:"language" binding:"omitempty,len=2"`
}

type ChatRequest struct {
	Message        string `json:"message" binding:"required,min=1,max=1000"`
	ConversationID string `json:"conversation_id" binding:"omitempty,uuid4"`
}
