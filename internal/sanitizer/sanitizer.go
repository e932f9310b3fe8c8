// Package sanitizer repairs common format violations of real-world MT940 statements.
//
// Every pass works line by line, keeps the order of the lines it does not drop and joins
// its output with CRLF, ending in a trailing CRLF. None of the passes can fail: content
// that cannot be repaired is replaced or dropped, so a strict parse of the original text
// is the only lossless option.
package sanitizer

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

const (
	lineTerminator = "\r\n"

	// maxTag86ContinuationLines is the number of lines allowed after a ":86:" tag line.
	maxTag86ContinuationLines = 5
)

var tagLineRegex = regexp.MustCompile(`^:([A-Za-z0-9]+):`)

// Sanitize runs ToSwiftCharset, StripStuffBetweenMessages and StripExcessTag86Lines in
// that order.
func Sanitize(s string) string {
	s = ToSwiftCharset(s)
	s = StripStuffBetweenMessages(s)
	return StripExcessTag86Lines(s)
}

// isSwiftLineChar reports whether r belongs to the SWIFT character set. CR and LF are
// handled as line terminators and never appear inside a line.
func isSwiftLineChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("/-?:().,'+{} ", r)
}

func isSwiftLine(s string) bool {
	for _, r := range s {
		if !isSwiftLineChar(r) {
			return false
		}
	}
	return true
}

// ToSwiftCharset replaces every character outside the SWIFT character set by its ASCII
// transliteration, for instance "ä" by "a" and "ß" by "ss". Characters without a SWIFT
// transliteration, such as "!" or "=", become ".".
func ToSwiftCharset(s string) string {
	lines := splitLines(s)
	for i, line := range lines {
		if isSwiftLine(line) {
			continue
		}
		var b strings.Builder
		for _, r := range line {
			if isSwiftLineChar(r) {
				b.WriteRune(r)
				continue
			}
			t := unidecode.Unidecode(string(r))
			if t == "" || !isSwiftLine(t) {
				t = "."
			}
			b.WriteString(t)
		}
		lines[i] = b.String()
	}
	return joinLines(lines)
}

// StripStuffBetweenMessages drops the non-tag lines in front of every ":20:" tag line back
// to the previous tag line. Unless the last tag of the document is ":86:", whose details
// may span several lines, every line after the last tag line is dropped as well.
func StripStuffBetweenMessages(s string) string {
	var (
		out, pending []string
		lastTag      string
	)
	for _, line := range splitLines(s) {
		tag, ok := tagOf(line)
		if !ok {
			pending = append(pending, line)
			continue
		}
		if tag != "20" {
			out = append(out, pending...)
		}
		pending = nil
		out = append(out, line)
		lastTag = tag
	}
	if lastTag == "" || lastTag == "86" {
		out = append(out, pending...)
	}
	return joinLines(out)
}

// StripExcessTag86Lines keeps at most 5 continuation lines after every ":86:" tag line.
func StripExcessTag86Lines(s string) string {
	var out []string
	continuation := -1
	for _, line := range splitLines(s) {
		if tag, ok := tagOf(line); ok {
			out = append(out, line)
			continuation = -1
			if tag == "86" {
				continuation = 0
			}
			continue
		}
		if continuation >= 0 {
			if continuation == maxTag86ContinuationLines {
				continue
			}
			continuation++
		}
		out = append(out, line)
	}
	return joinLines(out)
}

func tagOf(line string) (string, bool) {
	m := tagLineRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// splitLines splits on LF, removing one CR in front of it. A terminator at the very end
// does not produce an extra empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, lineTerminator) + lineTerminator
}
