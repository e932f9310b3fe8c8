package common

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fjacquet/mt940/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string {
	return &s
}

func sampleMessages() []models.Message {
	entry := models.NewDate(2009, time.September, 25)
	return []models.Message{
		{
			TransactionRefNo: "3996-11-11111111",
			AccountID:        "DABADKKK/111111-11111111",
			StatementNo:      "00001",
			SequenceNo:       strPtr("001"),
			OpeningBalance: models.Balance{
				DebitCreditIndicator: models.Credit,
				Date:                 models.NewDate(2009, time.September, 24),
				ISOCurrencyCode:      "EUR",
				Amount:               decimal.New(5448404, -2),
			},
			StatementLines: []models.StatementLine{
				{
					ValueDate:                 models.NewDate(2009, time.September, 25),
					EntryDate:                 &entry,
					ExtDebitCreditIndicator:   models.ExtDebit,
					Amount:                    decimal.New(58392, -2),
					TransactionTypeIdentCode:  models.CodeMSC,
					CustomerRef:               "1110030403010139",
					BankRef:                   strPtr("1234"),
					InformationToAccountOwner: strPtr("rent, march"),
				},
				{
					ValueDate:                models.NewDate(2009, time.September, 26),
					ExtDebitCreditIndicator:  models.ExtCredit,
					FundsCode:                strPtr("N"),
					Amount:                   decimal.New(5, 0),
					TransactionTypeIdentCode: models.CodeTRF,
					CustomerRef:              "NONREF",
				},
			},
			ClosingBalance: models.Balance{
				DebitCreditIndicator: models.Credit,
				Date:                 models.NewDate(2009, time.September, 30),
				ISOCurrencyCode:      "EUR",
				Amount:               decimal.New(5312694, -2),
			},
		},
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, input := range []string{"json", "JSON", " yaml ", "csv"} {
		_, err := ParseOutputFormat(input)
		assert.NoError(t, err, input)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)

	assert.Equal(t, ".yaml", FormatYAML.Extension())
}

func TestWriteMessagesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessagesJSON(&buf, sampleMessages(), false))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	msg := decoded[0]
	assert.Equal(t, "3996-11-11111111", msg["transaction_ref_no"])
	assert.Nil(t, msg["ref_to_related_msg"])
	assert.Nil(t, msg["closing_available_balance"])

	lines := msg["statement_lines"].([]interface{})
	require.Len(t, lines, 2)
	first := lines[0].(map[string]interface{})
	assert.Equal(t, "583.92", first["amount"])
	assert.Equal(t, "2009-09-25", first["entry_date"])
	assert.Equal(t, "Debit", first["ext_debit_credit_indicator"])
	assert.Equal(t, "MSC", first["transaction_type_ident_code"])
	assert.Nil(t, lines[1].(map[string]interface{})["entry_date"])
}

func TestWriteMessagesJSONPrettyAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessagesJSON(&buf, nil, true))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMessagesJSON(&buf, sampleMessages(), true))
	assert.Contains(t, buf.String(), "\n  {\n    \"transaction_ref_no\"")
}

func TestWriteMessagesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessagesYAML(&buf, sampleMessages()))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "DABADKKK/111111-11111111", decoded[0]["account_id"])
	assert.Contains(t, buf.String(), "2009-09-24")
	assert.Contains(t, buf.String(), "54484.04")
}

func TestWriteStatementLinesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatementLinesCSV(&buf, sampleMessages(), ';'))

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader(), records[0])
	row := map[string]string{}
	for i, h := range records[0] {
		row[h] = records[1][i]
	}
	assert.Equal(t, "3996-11-11111111", row["TransactionRefNo"])
	assert.Equal(t, "EUR", row["Currency"])
	assert.Equal(t, "2009-09-25", row["EntryDate"])
	assert.Equal(t, "-583.92", row["SignedAmount"])
	assert.Equal(t, "1234", row["BankRef"])
	assert.Equal(t, "rent, march", row["InformationToAccountOwner"])

	assert.Equal(t, "", records[2][6], "second line has no entry date")
	assert.Equal(t, "N", records[2][10])
}

func TestWriteStatementLinesCSVWithoutLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatementLinesCSV(&buf, nil, 0))
	assert.Equal(t, strings.Join(csvHeader(), ",")+"\n", buf.String())
}

func TestWriteMessagesDispatch(t *testing.T) {
	for _, f := range SupportedFormats {
		var buf bytes.Buffer
		require.NoError(t, WriteMessages(&buf, sampleMessages(), OutputOptions{Format: f, Delimiter: ','}))
		assert.NotEmpty(t, buf.String(), f)
	}
	assert.Error(t, WriteMessages(&bytes.Buffer{}, nil, OutputOptions{Format: "xml"}))
}

func TestWriteFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFields(&buf, []models.Field{{Tag: "20", Value: "ref"}}, false))
	assert.Equal(t, `[{"tag":"20","value":"ref"}]`+"\n", buf.String())
}
