package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldMonth     = "month"
	FieldAmount    = "amount"
	FieldStart     = "start"
	FieldEnd       = "end"
	FieldTotal     = "total"
	FieldCount     = "count"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentProration = "proration"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentSheets    = "sheets"
	ComponentBackend   = "backend"
	ComponentService   = "service"
)

// Operations defines standard operation names
const (
	OpQuery    = "query"
	OpSave     = "save"
	OpDelete   = "delete"
	OpList     = "list"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithBudget adds the month and amount of a budget record
func (f LogFields) WithBudget(month string, amount int64) LogFields {
	f[FieldMonth] = month
	f[FieldAmount] = amount
	return f
}

// WithRange adds the bounds of a queried date range
func (f LogFields) WithRange(start, end string) LogFields {
	f[FieldStart] = start
	f[FieldEnd] = end
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
