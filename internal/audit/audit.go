package audit

import (
	model "bid-sniper/internal/models"

	"bid-sniper/internal/jsonl"
	"bid-sniper/utils"
)

// Recorder persists scheduler events as an append-only JSONL audit trail.
type Recorder struct {
	w *jsonl.Writer
}

// NewRecorder creates a recorder appending to path. A blank path yields a
// recorder that discards everything.
func NewRecorder(path string) *Recorder {
	return &Recorder{w: jsonl.New(path)}
}

// Emit appends one event to the trail. Write failures are logged and
// swallowed; the audit trail never interferes with scheduling.
func (r *Recorder) Emit(ev model.SniperEvent) {
	if r == nil {
		return
	}
	if err := r.w.Write(ev); err != nil {
		utils.Warn("audit: failed to append event", map[string]any{
			"event": ev.Event,
			"error": err.Error(),
		})
	}
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.w.Close()
}
