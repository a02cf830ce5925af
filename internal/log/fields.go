package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldSessionID   = "session_id"
	FieldFileName    = "file_name"
	FieldSubDivision = "sub_division"
	FieldBucket      = "bucket"
	FieldRowsTotal   = "rows_total"
	FieldRowsLoaded  = "rows_loaded"
	FieldRowsDropped = "rows_dropped"
	FieldFutureDated = "future_dated"
	FieldSheetsRef   = "sheets_ref"
	FieldTable       = "table"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentIngest  = "ingest"
	ComponentExport  = "export"
	ComponentSession = "session"
	ComponentSheets  = "sheets"
)
