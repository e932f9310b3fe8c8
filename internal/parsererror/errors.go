// Package parsererror defines the closed set of errors produced while decoding MT940 statements.
//
// Every producing component returns one of the leaf error types below. The caller that knows
// which field was being decoded wraps the leaf into a *ParseError using one of the explicit
// constructors, so callers only ever have to inspect a single outer type.
package parsererror

import (
	"fmt"
	"strings"
)

// Kind identifies the variant carried by a ParseError.
type Kind int

const (
	KindGrammar Kind = iota + 1
	KindUnexpectedTag
	KindUnknownTag
	KindRequiredTagNotFound
	KindAmount
	KindDate
	KindVariantNotFound
	KindInvalidTransactionIdentCode
)

func (k Kind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindUnexpectedTag:
		return "unexpected tag"
	case KindUnknownTag:
		return "unknown tag"
	case KindRequiredTagNotFound:
		return "required tag not found"
	case KindAmount:
		return "amount"
	case KindDate:
		return "date"
	case KindVariantNotFound:
		return "variant not found"
	case KindInvalidTransactionIdentCode:
		return "invalid transaction identification code"
	default:
		return "unknown"
	}
}

// ParseError is the single error type returned by the top-level parse operations.
type ParseError struct {
	Kind Kind
	// Tag is the tag of the field being decoded, if any.
	Tag string
	Err error
}

func (e *ParseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("mt940: %s error in tag '%s': %v", e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("mt940: %s error: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Grammar wraps a tokenizer or subgrammar failure.
func Grammar(tag string, err *GrammarError) *ParseError {
	return &ParseError{Kind: KindGrammar, Tag: tag, Err: err}
}

// UnexpectedTag wraps a failed tag transition.
func UnexpectedTag(err *UnexpectedTagError) *ParseError {
	return &ParseError{Kind: KindUnexpectedTag, Tag: err.CurrentTag, Err: err}
}

// UnknownTag reports a tag outside the known vocabulary.
func UnknownTag(tag string) *ParseError {
	return &ParseError{Kind: KindUnknownTag, Tag: tag, Err: &UnknownTagError{Tag: tag}}
}

// RequiredTagNotFound reports a mandatory tag that never appeared in a message.
func RequiredTagNotFound(tag string) *ParseError {
	return &ParseError{Kind: KindRequiredTagNotFound, Err: &RequiredTagNotFoundError{RequiredTag: tag}}
}

// Amount wraps a decimal amount failure.
func Amount(tag string, err *AmountError) *ParseError {
	return &ParseError{Kind: KindAmount, Tag: tag, Err: err}
}

// Date wraps a date failure.
func Date(tag string, err *DateError) *ParseError {
	return &ParseError{Kind: KindDate, Tag: tag, Err: err}
}

// VariantNotFound wraps an unresolvable indicator.
func VariantNotFound(tag string, err *VariantNotFoundError) *ParseError {
	return &ParseError{Kind: KindVariantNotFound, Tag: tag, Err: err}
}

// InvalidTransactionIdentCode reports a transaction type code outside the known set.
// code is the full original text including the funds code discriminator.
func InvalidTransactionIdentCode(tag, code string) *ParseError {
	return &ParseError{
		Kind: KindInvalidTransactionIdentCode,
		Tag:  tag,
		Err:  &InvalidTransactionIdentCodeError{Code: code},
	}
}

// GrammarError represents input that does not conform to the MT940 token grammar.
type GrammarError struct {
	// Rule names the grammar rule that failed, e.g. "tag", "line" or "tag_61_field".
	Rule string
	// Line is the 1-based physical line number, 0 when unknown.
	Line  int
	Input string
	Msg   string
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar rule '%s' failed at line %d: %s: '%s'", e.Rule, e.Line, e.Msg, e.Input)
	}
	return fmt.Sprintf("grammar rule '%s' failed: %s: '%s'", e.Rule, e.Msg, e.Input)
}

// UnexpectedTagError is returned when a tag appears where the message structure does not allow it.
type UnexpectedTagError struct {
	CurrentTag   string
	LastTag      string
	ExpectedTags []string
}

func (e *UnexpectedTagError) Error() string {
	return fmt.Sprintf("unexpected tag '%s' found, expected one of '%s', the tag before this one was '%s'",
		e.CurrentTag, strings.Join(e.ExpectedTags, ", "), e.LastTag)
}

// UnknownTagError is returned for tags that are not part of the MT940 vocabulary.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag: '%s'", e.Tag)
}

// RequiredTagNotFoundError is returned when a mandatory tag is absent from a message.
type RequiredTagNotFoundError struct {
	RequiredTag string
}

func (e *RequiredTagNotFoundError) Error() string {
	return fmt.Sprintf("required tag '%s' not found", e.RequiredTag)
}

// AmountReason classifies decimal amount failures.
type AmountReason int

const (
	NoComma AmountReason = iota + 1
	TooManyCommas
	IntegerParseFailure
)

// AmountError is returned when an MT940 amount cannot be decoded.
type AmountError struct {
	Reason AmountReason
	// Value is the original field text.
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	switch e.Reason {
	case NoComma:
		return fmt.Sprintf("no comma found in amount: '%s'", e.Value)
	case TooManyCommas:
		return fmt.Sprintf("too many commas in amount: '%s'", e.Value)
	default:
		if e.Err != nil {
			return fmt.Sprintf("couldn't parse as integer: '%s': %v", e.Value, e.Err)
		}
		return fmt.Sprintf("couldn't parse as integer: '%s'", e.Value)
	}
}

func (e *AmountError) Unwrap() error {
	return e.Err
}

// DateError is returned when a date does not exist in the calendar or is malformed.
// Year, Month and Day hold the reconstructed strings, Year already expanded to four digits.
type DateError struct {
	Input string
	Year  string
	Month string
	Day   string
}

func (e *DateError) Error() string {
	if e.Year == "" && e.Month == "" && e.Day == "" {
		return fmt.Sprintf("malformed date: '%s'", e.Input)
	}
	return fmt.Sprintf("date parsing failed for date: '%s-%s-%s'", e.Year, e.Month, e.Day)
}

// VariantNotFoundError is returned when an enumeration literal is not recognized.
type VariantNotFoundError struct {
	Value string
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("variant not found: '%s'", e.Value)
}

// InvalidTransactionIdentCodeError is returned for unknown transaction type identification codes.
type InvalidTransactionIdentCodeError struct {
	Code string
}

func (e *InvalidTransactionIdentCodeError) Error() string {
	return fmt.Sprintf("invalid transaction identification code: '%s'", e.Code)
}

// FileError represents a failure to read or decode a statement file.
type FileError struct {
	FilePath string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("statement file '%s': %v", e.FilePath, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
