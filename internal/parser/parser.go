// Package parser defines the interfaces implemented by statement parsers and the shared
// base they embed.
package parser

import (
	"io"

	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/models"
)

// Parser decodes a complete statement.
type Parser interface {
	// Parse reads the whole statement from r and returns its messages in document order.
	// Implementations return *parsererror.ParseError for content errors.
	Parse(r io.Reader) ([]models.Message, error)
}

// FieldExtractor exposes the raw tokenizer output of a statement.
type FieldExtractor interface {
	ParseFields(r io.Reader) ([]models.Field, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is everything a parser created by the factory provides.
type FullParser interface {
	Parser
	FieldExtractor
	LoggerConfigurable
}
