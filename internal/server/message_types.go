package server

// MessageType names a WebSocket message
type MessageType string

const (
	// Client to server messages
	MessageTypeCoach    MessageType = "coach"
	MessageTypeShowdown MessageType = "showdown"
	MessageTypeScenario MessageType = "scenario"

	// Server to client messages
	MessageTypeCoachResult    MessageType = "coach_result"
	MessageTypeShowdownResult MessageType = "showdown_result"
	MessageTypeError          MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
