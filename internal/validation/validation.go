// Package validation checks user supplied paths and options before any work starts.
package validation

import (
	"fmt"
	"os"
	"unicode/utf8"

	"fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/fileutils"
)

// MaxWorkers bounds the concurrency of batch conversion.
const MaxWorkers = 64

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidInputDir checks that path names an existing directory.
func IsValidInputDir(path string) error {
	if path == "" {
		return fmt.Errorf("input directory is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	if _, err := common.ParseOutputFormat(format); err != nil {
		return fmt.Errorf("%w. Supported formats are %v", err, common.SupportedFormats)
	}
	return nil
}

// IsValidEncoding checks if the given input encoding is supported.
func IsValidEncoding(encoding string) error {
	if _, err := fileutils.ParseEncoding(encoding); err != nil {
		return fmt.Errorf("%w. Supported encodings are %v", err, fileutils.SupportedEncodings)
	}
	return nil
}

// IsValidDelimiter checks that the CSV delimiter is a single character that csv.Writer accepts.
func IsValidDelimiter(delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("invalid CSV delimiter: %q", delimiter)
	}
	return nil
}

// IsValidWorkerCount checks the batch worker count.
func IsValidWorkerCount(workers int) error {
	if workers < 1 || workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got: %d", MaxWorkers, workers)
	}
	return nil
}
