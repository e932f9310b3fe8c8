package mt940parser

import (
	"strings"

	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parsererror"
)

// ParseFields splits MT940 text into its (tag, value) fields without looking at what the
// tags mean.
//
// Lines end in CRLF or LF. A tag line has the form ":TAG:value" and every following line
// up to the next tag line continues its value. A blank line ends the document; after it
// only further blank lines or a single "-" trailer are accepted.
func ParseFields(text string) ([]models.Field, error) {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		fields  []models.Field
		current *models.Field
		parts   []string
		ended   bool
	)

	flush := func() {
		if current != nil {
			current.Value = strings.TrimSpace(strings.Join(parts, "\n"))
			fields = append(fields, *current)
			current, parts = nil, nil
		}
	}

	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		if strings.ContainsRune(line, '\r') {
			return nil, grammarError("line", lineNo, line, "carriage return without line feed")
		}

		if ended {
			if line != "" && line != "-" {
				return nil, grammarError("end_of_document", lineNo, line, "content after end of document")
			}
			continue
		}

		switch {
		case line == "":
			ended = true
		case strings.HasPrefix(line, ":"):
			m := tagLineRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, grammarError("tag", lineNo, line, "malformed tag")
			}
			flush()
			current = &models.Field{Tag: m[1]}
			parts = []string{m[2]}
		case current == nil:
			return nil, grammarError("field", lineNo, line, "expected a tag line")
		default:
			parts = append(parts, line)
		}
	}
	flush()

	if len(fields) == 0 {
		return nil, grammarError("fields", 0, text, "no fields found")
	}
	return fields, nil
}

func grammarError(rule string, line int, input, msg string) *parsererror.ParseError {
	return parsererror.Grammar("", &parsererror.GrammarError{Rule: rule, Line: line, Input: input, Msg: msg})
}
