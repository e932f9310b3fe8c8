package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/mt940/internal/models"

	"gopkg.in/yaml.v3"
)

// OutputFormat names a serialization of parsed messages.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatCSV  OutputFormat = "csv"
)

// SupportedFormats lists every OutputFormat.
var SupportedFormats = []OutputFormat{FormatJSON, FormatYAML, FormatCSV}

// ParseOutputFormat resolves a format name, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range SupportedFormats {
		if f == supported {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format '%s'", s)
}

// Extension returns the file extension used for the format, including the dot.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// OutputOptions controls how messages are serialized.
type OutputOptions struct {
	Format    OutputFormat
	Pretty    bool
	Delimiter rune
}

// WriteMessages serializes messages to w in the requested format.
func WriteMessages(w io.Writer, messages []models.Message, opts OutputOptions) error {
	switch opts.Format {
	case FormatJSON, "":
		return WriteMessagesJSON(w, messages, opts.Pretty)
	case FormatYAML:
		return WriteMessagesYAML(w, messages)
	case FormatCSV:
		return WriteStatementLinesCSV(w, messages, opts.Delimiter)
	default:
		return fmt.Errorf("unsupported output format '%s'", opts.Format)
	}
}

// WriteMessagesJSON writes messages as a JSON array whose keys follow the snake_case
// attribute names of the model.
func WriteMessagesJSON(w io.Writer, messages []models.Message, pretty bool) error {
	if messages == nil {
		messages = []models.Message{}
	}
	return writeJSON(w, messages, pretty)
}

// WriteMessagesYAML writes messages as a YAML sequence.
func WriteMessagesYAML(w io.Writer, messages []models.Message) error {
	if messages == nil {
		messages = []models.Message{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(messages); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}

// WriteFields writes tokenizer output as a JSON array of {"tag", "value"} objects.
func WriteFields(w io.Writer, fields []models.Field, pretty bool) error {
	if fields == nil {
		fields = []models.Field{}
	}
	return writeJSON(w, fields, pretty)
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}
