package events

import "context"

// ChannelEmitter delivers events over a buffered channel. The SSE handler
// drains the channel and forwards events to the client; the orchestrator
// blocks on a full buffer until the consumer catches up or the context is
// canceled.
type ChannelEmitter struct {
	ch chan *ProgressEvent
}

// NewChannelEmitter creates a ChannelEmitter with the given buffer size.
func NewChannelEmitter(buffer int) *ChannelEmitter {
	return &ChannelEmitter{ch: make(chan *ProgressEvent, buffer)}
}

// Emit delivers the event, blocking if the buffer is full. Returns the
// context error if the context is canceled before delivery.
func (e *ChannelEmitter) Emit(ctx context.Context, event *ProgressEvent) error {
	select {
	case e.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the receive side of the channel for the consumer.
func (e *ChannelEmitter) Events() <-chan *ProgressEvent {
	return e.ch
}

// Close closes the channel. Call only after the producing side is done.
func (e *ChannelEmitter) Close() {
	close(e.ch)
}
