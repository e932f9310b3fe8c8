package batch_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/mt940/internal/batch"
	"fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/fileutils"
	"fjacquet/mt940/internal/logging"
	"fjacquet/mt940/internal/mt940parser"
	"fjacquet/mt940/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statement(ref, account, closingDate string) string {
	return ":20:" + ref + "\r\n" +
		":25:" + account + "\r\n" +
		":28C:00001/001\r\n" +
		":60F:C090924EUR54484,04\r\n" +
		":61:0909250925D583,92NMSC1110030403010139//1234\r\n" +
		":86:rent\r\n" +
		":62F:C" + closingDate + "EUR53900,12\r\n"
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func newConverter(sanitize bool, opts batch.Options) (*batch.Converter, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return batch.NewConverter(mt940parser.NewAdapter(logger, sanitize), opts, logger), logger
}

func TestConvertDir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "converted")

	writeFile(t, filepath.Join(in, "a.sta"), statement("REF-A", "ACC1", "090930"))
	writeFile(t, filepath.Join(in, "nested", "b.sta"), statement("REF-B", "ACC2", "091031")+statement("REF-C", "ACC1", "091130"))
	writeFile(t, filepath.Join(in, "broken.sta"), ":20:REF\r\n:25:ACC\r\n")
	writeFile(t, filepath.Join(in, "readme.txt"), "not a statement")

	converter, logger := newConverter(false, batch.Options{Workers: 2})
	result, err := converter.ConvertDir(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total())
	require.Len(t, result.Converted, 2)
	require.Len(t, result.Failed, 1)

	assert.Equal(t, filepath.Join(in, "broken.sta"), result.Failed[0].InputFile)
	var parseErr *parsererror.ParseError
	require.True(t, errors.As(result.Failed[0].Err, &parseErr))
	assert.Equal(t, parsererror.KindRequiredTagNotFound, parseErr.Kind)

	assert.Equal(t, filepath.Join(out, "a.json"), result.Converted[0].OutputFile)
	assert.Equal(t, filepath.Join(out, "nested", "b.json"), result.Converted[1].OutputFile)
	assert.Equal(t, 2, result.Converted[1].Messages)
	assert.Equal(t, 2, result.Converted[1].StatementLines)
	assert.Equal(t, "2009-09-24_2009-11-30", result.Converted[1].Period.String())

	data, err := os.ReadFile(filepath.Join(out, "nested", "b.json"))
	require.NoError(t, err)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "REF-C", decoded[1]["transaction_ref_no"])

	accounts := result.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, "ACC1", accounts[0].AccountID)
	assert.Equal(t, 2, accounts[0].Messages)
	assert.Len(t, accounts[0].Files, 2)
	assert.Equal(t, "2009-09-24_2009-11-30", accounts[0].Period.String())
	assert.Equal(t, "ACC2", accounts[1].AccountID)
	assert.Equal(t, 1, accounts[1].Messages)

	assert.True(t, logger.HasEntry("INFO", "Batch conversion finished"))
	assert.True(t, logger.HasEntry("WARN", "Failed to parse statement"))
}

func TestConvertDirWithEncodingAndFormat(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	latin1 := ":20:REF\r\n:25:ACC\r\n:28C:1\r\n:60F:C090924EUR1,00\r\n:86:Caf\xe9\r\n:62F:C090930EUR1,00\r\n"
	writeFile(t, filepath.Join(in, "latin.STA"), latin1)

	converter, _ := newConverter(true, batch.Options{
		Encoding: fileutils.EncodingLatin1,
		Output:   common.OutputOptions{Format: common.FormatYAML},
		Workers:  1,
	})
	result, err := converter.ConvertDir(context.Background(), in, out)
	require.NoError(t, err)
	require.Len(t, result.Converted, 1)

	data, err := os.ReadFile(filepath.Join(out, "latin.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "information_to_account_owner: Cafe")
}

func TestConvertDirStrictRejectsUnsanitizedInput(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "s.sta"), "junk before\r\n"+statement("REF", "ACC", "090930"))

	strict, _ := newConverter(false, batch.Options{})
	result, err := strict.ConvertDir(context.Background(), in, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, result.Failed, 1)

	lenient, _ := newConverter(true, batch.Options{})
	result, err = lenient.ConvertDir(context.Background(), in, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, result.Converted, 1)
}

func TestConvertDirCancelled(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "a.sta"), statement("REF", "ACC", "090930"))
	writeFile(t, filepath.Join(in, "b.sta"), statement("REF", "ACC", "090930"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	converter, _ := newConverter(false, batch.Options{Workers: 4})
	result, err := converter.ConvertDir(ctx, in, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Len(t, result.Failed, 2)
	assert.Empty(t, result.Converted)
}

func TestConvertDirMissingInput(t *testing.T) {
	converter, _ := newConverter(false, batch.Options{})
	_, err := converter.ConvertDir(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}

func TestConvertFileReadError(t *testing.T) {
	converter, _ := newConverter(false, batch.Options{})
	res := converter.ConvertFile(filepath.Join(t.TempDir(), "missing.sta"), filepath.Join(t.TempDir(), "out.json"))

	var fileErr *parsererror.FileError
	assert.True(t, errors.As(res.Err, &fileErr))
}

func TestDateRangeMerge(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2009, time.September, d, 0, 0, 0, 0, time.UTC) }

	var empty batch.DateRange
	assert.Equal(t, "", empty.String())

	r := empty.Merge(batch.DateRange{Start: day(10), End: day(12)})
	r = r.Merge(batch.DateRange{Start: day(5), End: day(8)})
	r = r.Merge(batch.DateRange{})
	assert.Equal(t, "2009-09-05_2009-09-12", r.String())
}
