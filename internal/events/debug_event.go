package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	// DebugSettingsChanged carries a debug.Settings payload.
	DebugSettingsChanged = "events:debug:settings"
	// DebugDeepLink carries a DebugEvent describing how a link was handled.
	DebugDeepLink = "events:debug:deeplink"
)

// DebugEvent is a backend event payload shown in the debug panel.
type DebugEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func CreateDebugEvent(eventType EventType, message string) DebugEvent {
	return DebugEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info DebugEvent.
func NewInfo(message string) DebugEvent {
	return CreateDebugEvent(EventInfo, message)
}

// NewWarn creates a warn DebugEvent.
func NewWarn(message string) DebugEvent {
	return CreateDebugEvent(EventWarn, message)
}

// NewError creates an error DebugEvent.
func NewError(message string) DebugEvent {
	return CreateDebugEvent(EventError, message)
}

// NewSuccess creates a success DebugEvent.
func NewSuccess(message string) DebugEvent {
	return CreateDebugEvent(EventSuccess, message)
}

// With returns a copy of e with key set in its metadata.
func (e DebugEvent) With(key, value string) DebugEvent {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}
