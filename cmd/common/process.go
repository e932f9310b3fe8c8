// Package common contains shared functionality for command handlers
package common

import (
	"bytes"
	"io"
	"strings"

	"fjacquet/mt940/internal/config"
	"fjacquet/mt940/internal/container"
	"fjacquet/mt940/internal/factory"
	"fjacquet/mt940/internal/fileutils"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parser"
	"fjacquet/mt940/internal/validation"

	"github.com/spf13/cobra"
)

// ResolveParser returns the parser selected by the --strict flag, falling back to the
// parse.sanitize setting when the flag was not given.
func ResolveParser(cmd *cobra.Command, c *container.Container, strict bool) (parser.FullParser, error) {
	if !cmd.Flags().Changed("strict") {
		return c.GetDefaultParser(), nil
	}
	return c.GetParser(factory.ParserTypeFor(strict))
}

// ResolveEncoding returns the input encoding from the --encoding flag or the configuration.
func ResolveEncoding(cmd *cobra.Command, cfg *config.Config, flagValue string) (fileutils.Encoding, error) {
	name := cfg.Input.Encoding
	if cmd.Flags().Changed("encoding") {
		name = flagValue
	}
	return fileutils.ParseEncoding(name)
}

// ReadInput validates and reads a statement file as UTF-8 text.
func ReadInput(inputFile string, enc fileutils.Encoding, logger logging.Logger) (string, error) {
	if err := validation.IsValidInputFile(inputFile); err != nil {
		return "", err
	}
	text, err := fileutils.ReadStatement(inputFile, enc)
	if err != nil {
		return "", err
	}
	logger.Debug("Read statement",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldEncoding, Value: string(enc)})
	return text, nil
}

// ParseFile reads and parses a statement file.
func ParseFile(p parser.Parser, inputFile string, enc fileutils.Encoding, logger logging.Logger) ([]models.Message, error) {
	text, err := ReadInput(inputFile, enc, logger)
	if err != nil {
		return nil, err
	}
	return p.Parse(strings.NewReader(text))
}

// WriteResult runs write against the command's stdout when outputFile is empty, otherwise
// against outputFile. Nothing is written to the file when write fails.
func WriteResult(cmd *cobra.Command, outputFile string, write func(io.Writer) error) error {
	if outputFile == "" {
		return write(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	return fileutils.WriteOutput(outputFile, buf.Bytes())
}
