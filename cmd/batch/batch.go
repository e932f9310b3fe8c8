// Package batch handles batch processing of files
package batch

import (
	"fmt"

	"fjacquet/mt940/cmd/common"
	"fjacquet/mt940/cmd/root"
	"fjacquet/mt940/internal/batch"
	output "fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/validation"

	"github.com/spf13/cobra"
)

var (
	strict   bool
	format   string
	encoding string
	workers  int
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert statements from a directory",
	Long: `Batch convert MT940 statements from an input directory into an output directory.

Every file with the configured extension (".sta" by default) below the input directory is
converted independently and concurrently. The directory layout is mirrored in the output
directory. A file that fails does not stop the others; the command fails if any file failed.

Example:
  mt940 batch -i statements/ -o converted/ --workers 8 --format csv`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&strict, "strict", false, "Parse without sanitizing the input first")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or csv (default from config)")
	Cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Input encoding: utf-8, latin1 or windows-1252 (default from config)")
	Cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of files converted concurrently (default from config)")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	app := root.GetContainer()
	cfg := app.GetConfig()
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	if err := validation.IsValidInputDir(inputDir); err != nil {
		return err
	}
	if outputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	opts := batch.Options{
		Output:    cfg.OutputOptions(),
		Extension: cfg.Batch.Extension,
		Workers:   cfg.Batch.Workers,
	}
	if cmd.Flags().Changed("workers") {
		if err := validation.IsValidWorkerCount(workers); err != nil {
			return err
		}
		opts.Workers = workers
	}
	if cmd.Flags().Changed("format") {
		f, err := output.ParseOutputFormat(format)
		if err != nil {
			return err
		}
		opts.Output.Format = f
	}

	enc, err := common.ResolveEncoding(cmd, cfg, encoding)
	if err != nil {
		return err
	}
	opts.Encoding = enc

	p, err := common.ResolveParser(cmd, app, strict)
	if err != nil {
		return err
	}

	converter := app.NewBatchConverter(p, opts)
	result, err := converter.ConvertDir(cmd.Context(), inputDir, outputDir)
	if result != nil {
		printSummary(cmd, result)
	}
	if err != nil {
		return err
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d files failed to convert", len(result.Failed), result.Total())
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *batch.Result) {
	w := cmd.OutOrStdout()
	for _, a := range result.Accounts() {
		fmt.Fprintf(w, "%s: %d files, %d messages, %d statement lines, %s\n",
			a.AccountID, len(a.Files), a.Messages, a.StatementLines, a.Period)
	}
	for _, f := range result.Failed {
		fmt.Fprintf(w, "FAILED %s: %v\n", f.InputFile, f.Err)
	}
	fmt.Fprintf(w, "Converted %d of %d files\n", len(result.Converted), result.Total())
}
