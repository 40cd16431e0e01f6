package journal

import "time"

// Entry registra el resultado de algo que le pasó a un residente.
type Entry struct {
	ID         string
	ResidentID string

	Action  string
	Message string

	RecordedAt time.Time
}
