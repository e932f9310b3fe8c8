// Package container provides dependency injection for the mt940 application.
// It centralizes the creation and wiring of the logger and the parsers so that commands
// receive them explicitly.
package container

import (
	"fmt"

	"fjacquet/mt940/internal/batch"
	"fjacquet/mt940/internal/config"
	"fjacquet/mt940/internal/factory"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/parser"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	parsers map[factory.ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies, logging as configured.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg)))
}

// NewContainerWithLogger creates a container that logs to logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	parsers := make(map[factory.ParserType]parser.FullParser)
	for _, pt := range []factory.ParserType{factory.MT940, factory.MT940Sanitized} {
		p, err := factory.GetParserWithLogger(pt, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s parser: %w", pt, err)
		}
		parsers[pt] = p
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldParser, Value: string(factory.ParserTypeFor(!cfg.Parse.Sanitize))},
		logging.Field{Key: logging.FieldSanitize, Value: cfg.Parse.Sanitize})

	return &Container{
		logger:  logger,
		config:  cfg,
		parsers: parsers,
	}, nil
}

// GetParser returns the parser registered for pt.
func (c *Container) GetParser(pt factory.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetDefaultParser returns the parser selected by the parse.sanitize setting.
func (c *Container) GetDefaultParser() parser.FullParser {
	return c.parsers[factory.ParserTypeFor(!c.config.Parse.Sanitize)]
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[factory.ParserType]parser.FullParser {
	result := make(map[factory.ParserType]parser.FullParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// NewBatchConverter returns a batch converter using p and the container's logger.
// Zero values in opts are filled from the configuration.
func (c *Container) NewBatchConverter(p parser.Parser, opts batch.Options) *batch.Converter {
	if opts.Encoding == "" {
		opts.Encoding = c.config.InputEncoding()
	}
	if opts.Output.Format == "" {
		opts.Output = c.config.OutputOptions()
	}
	if opts.Extension == "" {
		opts.Extension = c.config.Batch.Extension
	}
	if opts.Workers == 0 {
		opts.Workers = c.config.Batch.Workers
	}
	return batch.NewConverter(p, opts, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}
