package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldGroupID identifies the channel group a log line concerns.
	FieldGroupID = "group_id"
	// FieldChannelID identifies the video channel a log line concerns.
	FieldChannelID = "channel_id"
	// FieldOperation names the store mutation that produced a change.
	FieldOperation = "op"
	// FieldStorageKey is the key-value key used for snapshot persistence.
	FieldStorageKey = "storage_key"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step an operator should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)
