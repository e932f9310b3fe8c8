// Package validate handles the MT940 validation command
package validate

import (
	"fmt"
	"io"

	"fjacquet/mt940/cmd/common"
	"fjacquet/mt940/cmd/root"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/models"

	"github.com/spf13/cobra"
)

var (
	strict          bool
	encoding        string
	requireBalanced bool
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that an MT940 statement parses",
	Long: `Check that an MT940 statement parses and print a summary of its messages.

For every message the opening balance plus the statement lines is compared with the closing
balance. A mismatch is reported; with --require-balanced it also fails the command.

Example:
  mt940 validate -i statement.sta --strict`,
	RunE: validateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&strict, "strict", false, "Parse without sanitizing the input first")
	Cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Input encoding: utf-8, latin1 or windows-1252 (default from config)")
	Cmd.Flags().BoolVar(&requireBalanced, "require-balanced", false, "Fail when a message does not balance")
}

func validateFunc(cmd *cobra.Command, args []string) error {
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

	messages, err := common.ParseFile(p, root.SharedFlags.Input, enc, logger)
	if err != nil {
		return fmt.Errorf("invalid statement %s: %w", root.SharedFlags.Input, err)
	}

	unbalanced := 0
	err = common.WriteResult(cmd, root.SharedFlags.Output, func(w io.Writer) error {
		var writeErr error
		unbalanced, writeErr = writeReport(w, messages)
		return writeErr
	})
	if err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if unbalanced > 0 {
		logger.Warn("Statement does not balance", logging.Field{Key: logging.FieldCount, Value: unbalanced})
		if requireBalanced {
			return fmt.Errorf("%d of %d messages do not balance", unbalanced, len(messages))
		}
	}
	return nil
}

func writeReport(w io.Writer, messages []models.Message) (int, error) {
	lines, unbalanced := 0, 0
	for _, m := range messages {
		lines += len(m.StatementLines)
		status := "balanced"
		if !m.Balanced() {
			unbalanced++
			status = fmt.Sprintf("NOT balanced (computed %s)", m.ComputedClosingBalance())
		}

		statement := m.StatementNo
		if m.SequenceNo != nil {
			statement += "/" + *m.SequenceNo
		}
		_, err := fmt.Fprintf(w, "%s %s statement %s: %d statement lines, opening %s, closing %s, %s\n",
			m.TransactionRefNo, m.AccountID, statement, len(m.StatementLines),
			formatBalance(m.OpeningBalance), formatBalance(m.ClosingBalance), status)
		if err != nil {
			return unbalanced, err
		}
	}

	_, err := fmt.Fprintf(w, "OK: %d messages, %d statement lines\n", len(messages), lines)
	return unbalanced, err
}

func formatBalance(b models.Balance) string {
	return fmt.Sprintf("%s %s %s", b.Date, b.ISOCurrencyCode, b.SignedAmount())
}
