package models

import (
	"time"

	"github.com/google/uuid"
)

// StandardMessage is the envelope for every broker and websocket event.
type StandardMessage struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	UserID    string                 `json:"user_id"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

func NewStandardMessage(event, userID string, payload map[string]interface{}) *StandardMessage {
	return &StandardMessage{
		ID:        uuid.New().String(),
		Event:     event,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
