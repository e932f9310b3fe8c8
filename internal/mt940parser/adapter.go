package mt940parser

import (
	"io"
	"unicode/utf8"

	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parser"
	"fjacquet/mt940/internal/parsererror"
	"fjacquet/mt940/internal/sanitizer"
)

// Adapter implements parser.FullParser for MT940 statements.
type Adapter struct {
	parser.BaseParser
	sanitize bool
}

// NewAdapter creates a new MT940 adapter. With sanitize set the input is repaired with
// sanitizer.Sanitize before it is parsed; otherwise parsing is strict.
func NewAdapter(logger logging.Logger, sanitize bool) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		sanitize:   sanitize,
	}
}

// Sanitizing reports whether the adapter repairs its input before parsing.
func (a *Adapter) Sanitizing() bool {
	return a.sanitize
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.Message, error) {
	text, err := a.readText(r)
	if err != nil {
		return nil, err
	}

	messages, err := Parse(text)
	if err != nil {
		a.GetLogger().WithError(err).Debug("Failed to parse MT940 statement",
			logging.Field{Key: logging.FieldSanitize, Value: a.sanitize})
		return nil, err
	}

	lines := 0
	for _, m := range messages {
		lines += len(m.StatementLines)
	}
	a.GetLogger().Debug("Parsed MT940 statement",
		logging.Field{Key: logging.FieldMessages, Value: len(messages)},
		logging.Field{Key: logging.FieldStatementLines, Value: lines},
		logging.Field{Key: logging.FieldSanitize, Value: a.sanitize})
	return messages, nil
}

// ParseFields implements parser.FieldExtractor.
func (a *Adapter) ParseFields(r io.Reader) ([]models.Field, error) {
	text, err := a.readText(r)
	if err != nil {
		return nil, err
	}

	fields, err := ParseFields(text)
	if err != nil {
		return nil, err
	}
	a.GetLogger().Debug("Tokenized MT940 statement", logging.Field{Key: logging.FieldCount, Value: len(fields)})
	return fields, nil
}

func (a *Adapter) readText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &parsererror.InvalidFormatError{
			ExpectedFormat: "UTF-8 encoded MT940",
			Msg:            "input is not valid UTF-8",
		}
	}

	text := string(data)
	if a.sanitize {
		text = sanitizer.Sanitize(text)
		a.GetLogger().Debug("Sanitized MT940 input", logging.Field{Key: logging.FieldCount, Value: len(text)})
	}
	return text, nil
}
