// Package convert handles the MT940 conversion command
package convert

import (
	"fmt"
	"io"

	"fjacquet/mt940/cmd/common"
	"fjacquet/mt940/cmd/root"
	output "fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/logging"

	"github.com/spf13/cobra"
)

var (
	strict   bool
	format   string
	encoding string
	compact  bool
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an MT940 statement to JSON, YAML or CSV",
	Long: `Convert an MT940 statement to JSON, YAML or CSV.

The statement is sanitized before parsing unless --strict is given. JSON and YAML carry the
complete statement model; CSV has one row per statement line.

Example:
  mt940 convert -i statement.sta -o statement.json
  mt940 convert -i statement.sta --format csv --encoding latin1`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().BoolVar(&strict, "strict", false, "Parse without sanitizing the input first")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or csv (default from config)")
	Cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Input encoding: utf-8, latin1 or windows-1252 (default from config)")
	Cmd.Flags().BoolVar(&compact, "compact", false, "Write JSON on a single line")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	app := root.GetContainer()
	cfg := app.GetConfig()
	logger := root.Log.WithFields(logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input})

	opts := cfg.OutputOptions()
	if cmd.Flags().Changed("format") {
		f, err := output.ParseOutputFormat(format)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	if cmd.Flags().Changed("compact") {
		opts.Pretty = !compact
	}

	enc, err := common.ResolveEncoding(cmd, cfg, encoding)
	if err != nil {
		return err
	}
	p, err := common.ResolveParser(cmd, app, strict)
	if err != nil {
		return err
	}

	messages, err := common.ParseFile(p, root.SharedFlags.Input, enc, logger)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", root.SharedFlags.Input, err)
	}

	err = common.WriteResult(cmd, root.SharedFlags.Output, func(w io.Writer) error {
		return output.WriteMessages(w, messages, opts)
	})
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	logger.Info("Conversion completed successfully",
		logging.Field{Key: logging.FieldMessages, Value: len(messages)},
		logging.Field{Key: logging.FieldFormat, Value: string(opts.Format)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(opts.Delimiter)},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})
	return nil
}
