// Package api provides the HTTP handlers for the asset generation
// endpoints. Handlers decode and validate request payloads, call the
// generation service through the AssetGenerator interface, and write
// responses through the shared response helpers so every error carries
// a trace ID.
package api
