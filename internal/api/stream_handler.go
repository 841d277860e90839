package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/forgelab/brandforge-api/internal/api/shared"
	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/events"
	"github.com/forgelab/brandforge-api/internal/redact"
)

// streamEventBuffer bounds how far generation may run ahead of a slow
// SSE consumer before the producer blocks.
const streamEventBuffer = 16

// streamEvent is the wire form of a progress event. Errors are rendered as
// a message string; the package appears only on the terminal event.
type streamEvent struct {
	Type     string               `json:"type"`
	Category string               `json:"category,omitempty"`
	Message  string               `json:"message,omitempty"`
	Percent  int                  `json:"percent"`
	Package  *domain.AssetPackage `json:"package,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// GenerateCompletePackageStream handles
// POST /api/generate/complete-package/stream requests. Progress is
// delivered as server-sent events while generation runs sequentially.
func (h *AssetHandler) GenerateCompletePackageStream(w http.ResponseWriter, r *http.Request) {
	var req GenerateCompletePackageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	emitter := events.NewChannelEmitter(streamEventBuffer)

	go func() {
		defer emitter.Close()
		if err := h.generator.StreamCompletePackage(r.Context(), packageRequest(req), emitter); err != nil {
			// Terminal failures were already emitted as error events;
			// emit failures mean the client went away.
			slog.Debug("streaming generation ended with error",
				"trace_id", shared.GetTraceID(r.Context()),
				"error", redact.Error(err))
		}
	}()

	for event := range emitter.Events() {
		payload, err := json.Marshal(toStreamEvent(event))
		if err != nil {
			slog.Error("failed to encode stream event", "error", err)
			continue
		}
		if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
			// Client disconnected; the context cancellation unblocks the
			// producer goroutine.
			return
		}
		flusher.Flush()
	}
}

func toStreamEvent(event *events.ProgressEvent) streamEvent {
	out := streamEvent{
		Type:     string(event.Type),
		Category: event.Category,
		Message:  event.Message,
		Percent:  event.Percent,
		Package:  event.Package,
	}
	if event.Err != nil {
		out.Error = redact.Error(event.Err)
	}
	return out
}
