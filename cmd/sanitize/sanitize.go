// Package sanitize handles the MT940 sanitize command
package sanitize

import (
	"fmt"
	"io"

	"fjacquet/mt940/cmd/common"
	"fjacquet/mt940/cmd/root"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/sanitizer"

	"github.com/spf13/cobra"
)

var encoding string

// Cmd represents the sanitize command
var Cmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Repair common format violations of an MT940 statement",
	Long: `Repair common format violations of an MT940 statement and print the result.

Characters outside the SWIFT character set are transliterated, text between messages is
dropped and free-text fields longer than six lines are truncated.

Example:
  mt940 sanitize -i statement.sta -o statement.clean.sta`,
	RunE: sanitizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Input encoding: utf-8, latin1 or windows-1252 (default from config)")
}

func sanitizeFunc(cmd *cobra.Command, args []string) error {
	app := root.GetContainer()
	cfg := app.GetConfig()
	logger := root.Log.WithFields(logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input})

	enc, err := common.ResolveEncoding(cmd, cfg, encoding)
	if err != nil {
		return err
	}
	text, err := common.ReadInput(root.SharedFlags.Input, enc, logger)
	if err != nil {
		return err
	}

	sanitized := sanitizer.Sanitize(text)
	err = common.WriteResult(cmd, root.SharedFlags.Output, func(w io.Writer) error {
		_, err := io.WriteString(w, sanitized)
		return err
	})
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	logger.Info("Sanitization completed successfully",
		logging.Field{Key: logging.FieldCount, Value: len(sanitized)},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})
	return nil
}
