package parser

import (
	"fjacquet/mt940/internal/logging"
)

// BaseParser provides the logger handling shared by parser implementations.
// Parsers embed it:
//
//	type Adapter struct {
//		parser.BaseParser
//		// parser specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser returns a BaseParser logging to logger, or to an info level logrus
// logger when logger is nil.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger implements LoggerConfigurable. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
