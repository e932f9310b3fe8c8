// Package mt940parser decodes SWIFT MT940 bank statements.
//
// Decoding happens in three steps: ParseFields splits the text into tagged fields, the tag
// decoders turn field values into typed values, and a per-message state machine checks
// the order of the tags while assembling models.Message values.
package mt940parser

import "regexp"

// swiftClass is the SWIFT "x" character set without the line terminators.
const swiftClass = `A-Za-z0-9/\-?:().,'+{} `

// Subgrammars for the values of the individual tags.
var (
	tagLineRegex = regexp.MustCompile(`^:([A-Za-z0-9]+):(.*)$`)

	tag20Regex = regexp.MustCompile(`^[` + swiftClass + `]{1,16}$`)
	tag25Regex = regexp.MustCompile(`^[` + swiftClass + `]{1,35}$`)
	tag28Regex = regexp.MustCompile(`^(\d{1,5})(?:/(\d{1,5}))?$`)

	balanceRegex = regexp.MustCompile(`^([A-Za-z])(\d{6})([A-Za-z]{3})([0-9,]{1,15})$`)

	tag61Regex = regexp.MustCompile(
		`^(\d{6})(\d{4})?(RC|RD|C|D)([A-Za-z])?([0-9,]{1,15})([NF][A-Za-z0-9]{3})([^\n]*)(?:\n(.*))?$`)
	refRegex           = regexp.MustCompile(`^[` + swiftClass + `]{1,16}$`)
	supplementaryRegex = regexp.MustCompile(`^[` + swiftClass + `]{1,34}$`)

	tag86LineRegex = regexp.MustCompile(`^[` + swiftClass + `]{0,65}$`)
)

const maxTag86Lines = 6
