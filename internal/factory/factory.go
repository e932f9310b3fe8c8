// Package factory creates parsers by type.
package factory

import (
	"fmt"
	"strings"

	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/mt940parser"
	"fjacquet/mt940/internal/parser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	// MT940 parses statements strictly, rejecting any format violation.
	MT940 ParserType = "mt940"
	// MT940Sanitized repairs common format violations before parsing.
	MT940Sanitized ParserType = "mt940-sanitized"
)

// GetParser returns a parser for parserType using an info level logger.
func GetParser(parserType ParserType) (parser.FullParser, error) {
	return GetParserWithLogger(parserType, logging.NewLogrusAdapter("info", "text"))
}

// GetParserWithLogger returns a parser for parserType that logs to logger.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (parser.FullParser, error) {
	switch ParserType(strings.ToLower(string(parserType))) {
	case MT940:
		return mt940parser.NewAdapter(logger, false), nil
	case MT940Sanitized:
		return mt940parser.NewAdapter(logger, true), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// ParserTypeFor returns the parser type matching the strict flag of the CLI.
func ParserTypeFor(strict bool) ParserType {
	if strict {
		return MT940
	}
	return MT940Sanitized
}
