// Package batch converts whole directories of MT940 statements concurrently.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/fileutils"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parser"

	"golang.org/x/sync/errgroup"
)

// Options configures a Converter.
type Options struct {
	Encoding  fileutils.Encoding
	Output    common.OutputOptions
	Extension string
	Workers   int
}

// Converter turns every statement file of a directory into one output file.
type Converter struct {
	parser  parser.Parser
	options Options
	logger  logging.Logger
}

// NewConverter creates a Converter. Missing options fall back to UTF-8 input, JSON output,
// the ".sta" extension and a single worker.
func NewConverter(p parser.Parser, opts Options, logger logging.Logger) *Converter {
	if opts.Encoding == "" {
		opts.Encoding = fileutils.EncodingUTF8
	}
	if opts.Output.Format == "" {
		opts.Output.Format = common.FormatJSON
	}
	if opts.Extension == "" {
		opts.Extension = ".sta"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Converter{parser: p, options: opts, logger: logger}
}

// FileResult is the outcome of converting one statement file.
type FileResult struct {
	InputFile      string
	OutputFile     string
	Accounts       []AccountSummary
	Period         DateRange
	Messages       int
	StatementLines int
	Err            error
}

// Result collects the outcome of a directory conversion in input order.
type Result struct {
	Converted []FileResult
	Failed    []FileResult
}

// Total returns the number of files that were considered.
func (r *Result) Total() int {
	return len(r.Converted) + len(r.Failed)
}

// ConvertDir converts every statement below inputDir into outputDir, mirroring the
// directory layout. A file that fails to convert is recorded in Result.Failed and does not
// stop the others. The returned error is only set for setup failures or cancellation.
func (c *Converter) ConvertDir(ctx context.Context, inputDir, outputDir string) (*Result, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, c.options.Extension)
	if err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	start := time.Now()
	c.logger.Info("Starting batch conversion",
		logging.Field{Key: logging.FieldInputFile, Value: inputDir},
		logging.Field{Key: logging.FieldOutputFile, Value: outputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: logging.FieldWorkers, Value: c.options.Workers})

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.Workers)

	for i, file := range files {
		outputFile, err := c.outputPath(inputDir, outputDir, file)
		if err != nil {
			results[i] = FileResult{InputFile: file, Err: err}
			continue
		}
		results[i] = FileResult{InputFile: file, OutputFile: outputFile}
		if gctx.Err() != nil {
			results[i].Err = gctx.Err()
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i] = c.ConvertFile(file, outputFile)
			return nil
		})
	}

	waitErr := g.Wait()

	result := &Result{}
	for _, r := range results {
		if r.Err != nil {
			result.Failed = append(result.Failed, r)
		} else {
			result.Converted = append(result.Converted, r)
		}
	}

	c.logger.Info("Batch conversion finished",
		logging.Field{Key: logging.FieldCount, Value: len(result.Converted)},
		logging.Field{Key: logging.FieldStatus, Value: fmt.Sprintf("%d failed", len(result.Failed))},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	if waitErr != nil {
		return result, fmt.Errorf("batch conversion interrupted: %w", waitErr)
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("batch conversion interrupted: %w", err)
	}
	return result, nil
}

// ConvertFile reads, parses and serializes a single statement.
func (c *Converter) ConvertFile(inputFile, outputFile string) FileResult {
	res := FileResult{InputFile: inputFile, OutputFile: outputFile}
	logger := c.logger.WithFields(logging.Field{Key: logging.FieldInputFile, Value: inputFile})

	text, err := fileutils.ReadStatement(inputFile, c.options.Encoding)
	if err != nil {
		res.Err = err
		logger.WithError(err).Warn("Failed to read statement")
		return res
	}

	messages, err := c.parser.Parse(strings.NewReader(text))
	if err != nil {
		res.Err = err
		logger.WithError(err).Warn("Failed to parse statement")
		return res
	}

	var buf bytes.Buffer
	if err := common.WriteMessages(&buf, messages, c.options.Output); err != nil {
		res.Err = err
		logger.WithError(err).Warn("Failed to serialize statement")
		return res
	}
	if err := fileutils.WriteOutput(outputFile, buf.Bytes()); err != nil {
		res.Err = err
		logger.WithError(err).Warn("Failed to write output")
		return res
	}

	summarize(&res, messages)
	logger.Debug("Converted statement",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldMessages, Value: res.Messages},
		logging.Field{Key: logging.FieldStatementLines, Value: res.StatementLines})
	return res
}

func (c *Converter) outputPath(inputDir, outputDir, file string) (string, error) {
	rel, err := filepath.Rel(inputDir, file)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path for %s: %w", file, err)
	}
	return filepath.Join(outputDir, fileutils.ReplaceExtension(rel, c.options.Output.Format.Extension())), nil
}

func summarize(res *FileResult, messages []models.Message) {
	byAccount := make(map[string]*AccountSummary)
	var order []string
	for _, m := range messages {
		period := DateRange{Start: m.OpeningBalance.Date.Time, End: m.ClosingBalance.Date.Time}
		res.Messages++
		res.StatementLines += len(m.StatementLines)
		res.Period = res.Period.Merge(period)

		summary, ok := byAccount[m.AccountID]
		if !ok {
			summary = &AccountSummary{AccountID: m.AccountID, Files: []string{res.InputFile}}
			byAccount[m.AccountID] = summary
			order = append(order, m.AccountID)
		}
		summary.Period = summary.Period.Merge(period)
		summary.Messages++
		summary.StatementLines += len(m.StatementLines)
	}

	sort.Strings(order)
	for _, id := range order {
		res.Accounts = append(res.Accounts, *byAccount[id])
	}
}
