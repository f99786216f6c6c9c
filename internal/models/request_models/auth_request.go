package request_models

type RegisterRequest struct {
	DisplayName       string   `json:"display_name" binding:"omitempty,min=1,max=50"`
	Bio               string   `json:"bio" binding:"omitempty,max=500"`
	AvatarURL         string   `json:"avatar_url" binding:"omitempty,url"`
	PreferredLanguage string   `json:"preferred_language" binding:"omitempty,oneof=en es fr de pt zh ja vi"`
	WellnessGoals     []string `json:"wellness_goals" binding:"omitempty,max=10,dive,min=1,max=64"`
	ExperienceLevel   string   `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdatePreferencesRequest struct {
	DisplayName       *string             `json:"display_name" binding:"omitempty,min=1,max=50"`
	AvatarURL         *string             `json:"avatar_url" binding:"omitempty,url"`
	Bio               *string             `json:"bio" binding:"omitempty,max=500"`
	PreferredLanguage *string             `json:"preferred_language" binding:"omitempty,oneof=en es fr de pt zh ja vi"`
	WellnessGoals     *[]string           `json:"wellness_goals" binding:"omitempty,max=10,dive,min=1,max=64"`
	ExperienceLevel   *string             `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Notifications     *NotificationsPatch `json:"notifications"`
}

type NotificationsPatch struct {
	DailyReminder    *bool `json:"daily_reminder"`
	WeeklySummary    *bool `json:"weekly_summary"`
	MilestoneAlerts  *bool `json:"milestone_alerts"`
	MarketingUpdates *bool `json:"marketing_updates"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,min=32"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
