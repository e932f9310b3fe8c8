package models

// Field is a single tag and its raw value as produced by the tokenizer.
// Multi-line values are joined with "\n" and trimmed.
type Field struct {
	Tag   string `json:"tag" yaml:"tag"`
	Value string `json:"value" yaml:"value"`
}
