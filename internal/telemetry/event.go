package telemetry

import (
	"time"
)

// EventType is a cli event type
type EventType string

// set of supported cli event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
)

// EventDataKey names a piece of additional event information
type EventDataKey string

// set of event data keys
const (
	EventDataKeyErr EventDataKey = "err"
)

// EventData holds additional event information
type EventData struct {
	Key   EventDataKey
	Value interface{}
}

// EventDataError creates the event data of a failed command
func EventDataError(err error) EventData {
	return EventData{Key: EventDataKeyErr, Value: err.Error()}
}

type event struct {
	id          string
	eventType   EventType
	username    string
	time        time.Time
	executionID string
	command     string
	version     string
	data        []EventData
}
