package logschema

// Log schema constants for spikeband structured logs.
const (
	SchemaID    = "spikeband.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldError     = "error"
	FieldTetrode   = "tetrode"
	FieldChannel   = "channel"
)
