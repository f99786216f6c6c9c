package request_models

import "encoding/json"

type TriggerMilestoneRequest struct {
	EventType string          `json:"event_type" binding:"required,oneof=first_session streak_7 streak_30 goal_completed level_up minutes_100"`
	Data      json.RawMessage `json:"data"`
}
