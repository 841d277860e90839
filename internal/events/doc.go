// Package events provides progress event types for streaming asset generation.
//
// The generation orchestrator emits events as it works through a package
// request so that transports (server-sent events, logs) can report progress
// without the orchestrator knowing who is listening.
//
// The primary components are:
// - ProgressEvent: a single progress, completion, or error notification
// - Emitter: interface for components that can receive events
// - ChannelEmitter: channel-backed implementation used by the SSE transport
package events
