package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldResource   = "resource"
	FieldStage      = "stage"
	FieldSeason     = "season"
	FieldWindow     = "window"
	FieldCursor     = "cursor"
	FieldStatusCode = "status_code"
	FieldAttempt    = "attempt"
	FieldCount      = "count"
	FieldBatch      = "batch"
	FieldKey        = "key"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
)
