package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/scenario"
)

// Message is the WebSocket envelope. Data holds the type-specific payload;
// replies echo the request's RequestID.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message stamped with now
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// CoachRequest asks for feedback on one decision
type CoachRequest struct {
	State      coach.TableSnapshot `json:"state"`
	HeroAction coach.Action        `json:"heroAction"`
	RaiseSize  *float64            `json:"raiseSizeBb,omitempty"`
	OutsAnswer *int                `json:"outsAnswer,omitempty"`
}

// CoachResponse is the coaching result plus the outs grade when an outs
// answer was given
type CoachResponse struct {
	coach.Result
	OutsGrade *coach.OutsGrade `json:"outsGrade,omitempty"`
}

// ScenarioRequest asks for a generated spot. A zero seed picks one.
type ScenarioRequest struct {
	Mode  string `json:"mode,omitempty"`
	Focus string `json:"focus,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
}

// ScenarioResponse is a generated spot and the seed that reproduces it
type ScenarioResponse struct {
	scenario.Spot
	Seed int64 `json:"seed"`
}

// ErrorData is the payload of error messages and HTTP error bodies
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
