package probe

import "time"

// Status represents the current connectivity tri-state.
type Status string

const (
	StatusUnknown      Status = "unknown"
	StatusChecking     Status = "checking"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// FailureKind classifies why a check settled disconnected.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureParse     FailureKind = "parse"
)

// EventType defines the type of probe event.
type EventType string

const (
	EventChecking EventType = "checking"
	EventSettled  EventType = "settled"
)

// State is a snapshot of the probe outcome.
type State struct {
	Status        Status
	Message       string
	BackendStatus string
	Failure       FailureKind
	HTTPStatus    int
	LastCheckedAt time.Time
}

// Event represents a probe update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
