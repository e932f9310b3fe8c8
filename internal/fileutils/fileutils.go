// Package fileutils provides the file operations used by the CLI and the batch converter:
// reading statements in their original character set and writing converted output.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/mt940/internal/parsererror"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character set of a statement file.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingLatin1      Encoding = "latin1"
	EncodingWindows1252 Encoding = "windows-1252"
)

// SupportedEncodings lists the canonical encoding names.
var SupportedEncodings = []Encoding{EncodingUTF8, EncodingLatin1, EncodingWindows1252}

var encodingAliases = map[string]Encoding{
	"utf-8":        EncodingUTF8,
	"utf8":         EncodingUTF8,
	"latin1":       EncodingLatin1,
	"latin-1":      EncodingLatin1,
	"iso-8859-1":   EncodingLatin1,
	"windows-1252": EncodingWindows1252,
	"cp1252":       EncodingWindows1252,
}

// ParseEncoding resolves an encoding name or alias, case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	if enc, ok := encodingAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return enc, nil
	}
	return "", fmt.Errorf("unsupported encoding: %s", name)
}

// DecodeStatement converts raw statement bytes to a UTF-8 string.
// UTF-8 input must already be valid.
func DecodeStatement(data []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8, "":
		if !utf8.Valid(data) {
			return "", &parsererror.InvalidFormatError{
				ExpectedFormat: "UTF-8 encoded MT940",
				Msg:            "input is not valid UTF-8",
			}
		}
		return string(data), nil
	case EncodingLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode latin1 input: %w", err)
		}
		return string(decoded), nil
	case EncodingWindows1252:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode windows-1252 input: %w", err)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s", enc)
	}
}

// ReadStatement reads a statement file and decodes it to UTF-8.
func ReadStatement(filePath string, enc Encoding) (string, error) {
	data, err := ReadFile(filePath)
	if err != nil {
		return "", &parsererror.FileError{FilePath: filePath, Err: err}
	}

	text, err := DecodeStatement(data, enc)
	if err != nil {
		if formatErr, ok := err.(*parsererror.InvalidFormatError); ok {
			formatErr.FilePath = filePath
			return "", formatErr
		}
		return "", &parsererror.FileError{FilePath: filePath, Err: err}
	}
	return text, nil
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadFile reads the entire contents of a file
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteOutput writes converted output to filePath, creating parent directories as needed.
func WriteOutput(filePath string, data []byte) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ListFilesWithExtension returns the files below dirPath whose extension matches,
// case-insensitively, in lexical order.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	var files []string
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// ReplaceExtension swaps the extension of path for ext.
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
