package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSwiftCharsetSentence(t *testing.T) {
	assert.Equal(t, "hallo wass ist los\r\n", ToSwiftCharset("hällö waß íst lös"))
}

func TestToSwiftCharsetSpecialChars(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ä", "a"},
		{"ö", "o"},
		{"ú", "u"},
		{"é", "e"},
		{"å", "a"},
		{"á", "a"},
		{"ß", "ss"},
		{"ó", "o"},
		{"í", "i"},
		{"ë", "e"},
		{"=", "."},
		{"!", "."},
		{"\t", "."},
		{"a\rb", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected+"\r\n", ToSwiftCharset(tt.input))
		})
	}
}

func TestToSwiftCharsetOutputIsSwift(t *testing.T) {
	inputs := []string{
		"Überweisung € 100,00 an Müller & Söhne",
		"日本語のテキスト",
		"emoji 🎉 party",
		"tab\tseparated;values|pipes",
		":86:ÄÖÜ\r\nline two ñ",
	}
	for _, input := range inputs {
		for _, line := range splitLines(ToSwiftCharset(input)) {
			assert.True(t, isSwiftLine(line), "line %q still has non SWIFT characters", line)
		}
	}
}

func TestToSwiftCharsetKeepsConformingText(t *testing.T) {
	input := ":20:3996-11-11111111\r\n:25:DABADKKK/111111-11111111\r\n"
	assert.Equal(t, input, ToSwiftCharset(input))
	assert.Equal(t, input, ToSwiftCharset(strings.ReplaceAll(input, "\r\n", "\n")))
}

func TestStripStuffBetweenMessages(t *testing.T) {
	input := strings.Join([]string{
		"garbage header",
		":20:1",
		":25:ACC",
		":62F:C090930EUR1,00",
		"-",
		"",
		"page 2 of 3",
		":20:2",
		":25:ACC",
		":62F:C090930EUR1,00",
		"-",
		"trailing garbage",
	}, "\r\n")

	expected := strings.Join([]string{
		":20:1",
		":25:ACC",
		":62F:C090930EUR1,00",
		":20:2",
		":25:ACC",
		":62F:C090930EUR1,00",
	}, "\r\n") + "\r\n"

	assert.Equal(t, expected, StripStuffBetweenMessages(input))
}

func TestStripStuffBetweenMessagesKeepsTrailingTag86Lines(t *testing.T) {
	input := ":20:1\r\n:86:first line\r\nsecond line\r\nthird line\r\n"
	assert.Equal(t, input, StripStuffBetweenMessages(input))
}

func TestStripStuffBetweenMessagesKeepsContinuationsBeforeOtherTags(t *testing.T) {
	input := ":20:1\r\n:61:0909250925D583,92NMSC1110030403010139\r\nsupplementary\r\n:62F:C090930EUR1,00\r\n"
	assert.Equal(t, input, StripStuffBetweenMessages(input))
}

func TestStripStuffBetweenMessagesWithoutTags(t *testing.T) {
	assert.Equal(t, "just text\r\n", StripStuffBetweenMessages("just text"))
	assert.Equal(t, "", StripStuffBetweenMessages(""))
}

func TestStripExcessTag86Lines(t *testing.T) {
	input := strings.Join([]string{
		":20:1",
		":86:line 0",
		"line 1",
		"line 2",
		"line 3",
		"line 4",
		"line 5",
		"line 6",
		"line 7",
		":61:0909250925D583,92NMSC1110030403010139",
		"supplementary",
		":86:short",
		"line 1",
	}, "\r\n")

	expected := strings.Join([]string{
		":20:1",
		":86:line 0",
		"line 1",
		"line 2",
		"line 3",
		"line 4",
		"line 5",
		":61:0909250925D583,92NMSC1110030403010139",
		"supplementary",
		":86:short",
		"line 1",
	}, "\r\n") + "\r\n"

	assert.Equal(t, expected, StripExcessTag86Lines(input))
}

func TestSanitize(t *testing.T) {
	input := "Kontoauszug\n:20:STARTUMS\n:25:10020030/1234567\n:28C:5/1\n:60F:C160201EUR1000,00\n" +
		":61:1602020202DR50,00NMSCNONREF\n:86:Zahlung an Müller\n1\n2\n3\n4\n5\n6\n" +
		":62F:C160202EUR950,00\n-\n"

	expected := ":20:STARTUMS\r\n:25:10020030/1234567\r\n:28C:5/1\r\n:60F:C160201EUR1000,00\r\n" +
		":61:1602020202DR50,00NMSCNONREF\r\n:86:Zahlung an Muller\r\n1\r\n2\r\n3\r\n4\r\n5\r\n" +
		":62F:C160202EUR950,00\r\n"

	assert.Equal(t, expected, Sanitize(input))
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"plain text without tags",
		"hällö waß íst lös",
		":20:1\n:86:ä\nb\nc\nd\ne\nf\ng\nh\n",
		"head\r\n:20:1\r\n:25:x\r\n-\r\n\r\n:20:2\r\n:62F:C1\r\ntail\r\n",
		":20:1\r\r\n:86:a\rb\r\n",
		"€uro\n\n\n:20:x\n",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "input %q", input)
	}
}
