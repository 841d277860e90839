package events

import (
	"context"
	"time"

	"github.com/forgelab/brandforge-api/internal/domain"
)

// EventType distinguishes the kinds of notifications emitted during
// package generation.
type EventType string

const (
	// TypeProgress marks an intermediate step announcement.
	TypeProgress EventType = "progress"

	// TypeComplete marks the terminal event carrying the finished package.
	TypeComplete EventType = "complete"

	// TypeError marks a terminal failure of the whole generation run.
	TypeError EventType = "error"
)

// ProgressEvent describes one step of a streaming generation run.
// Progress events carry a message and a percent estimate; the terminal
// complete event carries the assembled package, and the terminal error
// event carries the failure.
type ProgressEvent struct {
	Type     EventType `json:"type"`
	Category string    `json:"category,omitempty"`
	Message  string    `json:"message,omitempty"`
	Percent  int       `json:"percent"`

	// Package is set only on complete events.
	Package *domain.AssetPackage `json:"package,omitempty"`

	// Err is set only on error events. It is not serialized directly;
	// transports render it as a message.
	Err error `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// NewProgress creates an intermediate progress event.
func NewProgress(category, message string, percent int) *ProgressEvent {
	return &ProgressEvent{
		Type:      TypeProgress,
		Category:  category,
		Message:   message,
		Percent:   percent,
		CreatedAt: time.Now(),
	}
}

// NewComplete creates the terminal event carrying the finished package.
func NewComplete(pkg *domain.AssetPackage) *ProgressEvent {
	return &ProgressEvent{
		Type:      TypeComplete,
		Percent:   100,
		Package:   pkg,
		CreatedAt: time.Now(),
	}
}

// NewError creates the terminal event for a failed generation run.
func NewError(err error) *ProgressEvent {
	return &ProgressEvent{
		Type:      TypeError,
		Err:       err,
		CreatedAt: time.Now(),
	}
}

// Emitter defines an interface for components that receive progress events.
// The orchestrator publishes through an Emitter without knowledge of the
// transport behind it.
type Emitter interface {
	// Emit delivers the given event. Returns an error if the event cannot
	// be delivered, for example when the consumer has gone away.
	Emit(ctx context.Context, event *ProgressEvent) error
}
