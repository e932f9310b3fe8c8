package logging

// Field names shared by every log entry so that output can be filtered consistently.
const (
	FieldFile           = "file_path"
	FieldInputFile      = "input_file"
	FieldOutputFile     = "output_file"
	FieldParser         = "parser"
	FieldFormat         = "format"
	FieldEncoding       = "encoding"
	FieldSanitize       = "sanitize"
	FieldCount          = "count"
	FieldMessages       = "messages"
	FieldStatementLines = "statement_lines"
	FieldWorkers        = "workers"
	FieldDelimiter      = "delimiter"
	FieldDuration       = "duration_ms"
	FieldStatus         = "status"
	FieldError          = "error"
)
