package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/mt940/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = ":20:3996-11-11111111\r\n" +
	":25:DABADKKK/111111-11111111\r\n" +
	":28C:00001/001\r\n" +
	":60F:C090924EUR54484,04\r\n" +
	":61:0909250925D583,92NMSC1110030403010139//1234\r\n" +
	":86:Mieteingang M\xfcller\r\n" +
	":62F:C090930EUR53900,12\r\n" +
	"\r\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	root.Init()
	registered := false
	for _, c := range root.Cmd.Commands() {
		if c == Cmd {
			registered = true
		}
	}
	if !registered {
		root.Cmd.AddCommand(Cmd)
	}

	root.SharedFlags = root.CommonFlags{}
	strict, format, encoding, compact = false, "", "", false
	for _, name := range []string{"strict", "format", "encoding", "compact"} {
		Cmd.Flags().Lookup(name).Changed = false
	}

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(append([]string{"convert"}, args...))
	err := root.Cmd.Execute()
	return out.String(), err
}

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.sta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestConvertToJSONOnStdout(t *testing.T) {
	input := writeStatement(t, statement)

	out, err := execute(t, "-i", input, "--encoding", "latin1")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "3996-11-11111111", decoded[0]["transaction_ref_no"])

	lines := decoded[0]["statement_lines"].([]interface{})
	require.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.Equal(t, "583.92", line["amount"])
	assert.Equal(t, "Mieteingang Muller", line["information_to_account_owner"])
}

func TestConvertToCSVFile(t *testing.T) {
	input := writeStatement(t, statement)
	output := filepath.Join(t.TempDir(), "out", "statement.csv")

	_, err := execute(t, "-i", input, "-o", output, "--format", "csv", "-e", "windows-1252")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], "TransactionRefNo,AccountID"))
	assert.Contains(t, rows[1], "-583.92")
}

func TestConvertCompactJSON(t *testing.T) {
	input := writeStatement(t, statement)

	out, err := execute(t, "-i", input, "-e", "latin1", "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestConvertStrictRejectsNonSwiftInput(t *testing.T) {
	input := writeStatement(t, "header junk\r\n"+strings.ReplaceAll(statement, "M\xfcller", "Muller"))

	_, err := execute(t, "-i", input, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing")

	_, err = execute(t, "-i", input)
	assert.NoError(t, err)
}

func TestConvertRejectsInvalidUTF8ByDefault(t *testing.T) {
	input := writeStatement(t, statement)

	_, err := execute(t, "-i", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestConvertErrors(t *testing.T) {
	input := writeStatement(t, statement)

	_, err := execute(t, "-i", input, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "-i", input, "--encoding", "utf-16")
	assert.Error(t, err)

	_, err = execute(t, "-i", filepath.Join(t.TempDir(), "missing.sta"))
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err)
}
