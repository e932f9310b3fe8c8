// Package fields handles the command that dumps the raw fields of a statement
package fields

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/mt940/cmd/common"
	"fjacquet/mt940/cmd/root"
	output "fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/logging"

	"github.com/spf13/cobra"
)

var (
	strict   bool
	encoding string
)

// Cmd represents the fields command
var Cmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the tag/value fields of an MT940 statement as JSON",
	Long: `Print the tag/value fields of an MT940 statement as JSON.

Only the line grammar is checked; tag order and field contents are not validated. This is
useful to find out why a statement is rejected.

Example:
  mt940 fields -i statement.sta --strict`,
	RunE: fieldsFunc,
}

func init() {
	Cmd.Flags().BoolVar(&strict, "strict", false, "Tokenize without sanitizing the input first")
	Cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Input encoding: utf-8, latin1 or windows-1252 (default from config)")
}

func fieldsFunc(cmd *cobra.Command, args []string) error {
	app := root.GetContainer()
	cfg := app.GetConfig()
	logger := root.Log.WithFields(logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input})

	enc, err := common.ResolveEncoding(cmd, cfg, encoding)
	if err != nil {
		return err
	}
	p, err := common.ResolveParser(cmd, app, strict)
	if err != nil {
		return err
	}
	text, err := common.ReadInput(root.SharedFlags.Input, enc, logger)
	if err != nil {
		return err
	}

	parsed, err := p.ParseFields(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("error tokenizing %s: %w", root.SharedFlags.Input, err)
	}

	return common.WriteResult(cmd, root.SharedFlags.Output, func(w io.Writer) error {
		return output.WriteFields(w, parsed, cfg.Output.Pretty)
	})
}
