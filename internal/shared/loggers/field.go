package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldStage      = "stage"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID       = "run_id"
	FieldPartitionId = "partition_id"
	FieldLineNumber  = "line_number"
	FieldInputSource = "input_source"
)
