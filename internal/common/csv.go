// Package common provides the output writers shared by the CLI commands and the batch
// converter.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/mt940/internal/models"

	"github.com/gocarina/gocsv"
)

// StatementLineRow is one statement line flattened together with the message it belongs to.
type StatementLineRow struct {
	TransactionRefNo          string `csv:"TransactionRefNo"`
	AccountID                 string `csv:"AccountID"`
	StatementNo               string `csv:"StatementNo"`
	SequenceNo                string `csv:"SequenceNo"`
	Currency                  string `csv:"Currency"`
	ValueDate                 string `csv:"ValueDate"`
	EntryDate                 string `csv:"EntryDate"`
	DebitCreditIndicator      string `csv:"DebitCreditIndicator"`
	Amount                    string `csv:"Amount"`
	SignedAmount              string `csv:"SignedAmount"`
	FundsCode                 string `csv:"FundsCode"`
	TransactionTypeIdentCode  string `csv:"TransactionTypeIdentCode"`
	CustomerRef               string `csv:"CustomerRef"`
	BankRef                   string `csv:"BankRef"`
	SupplementaryDetails      string `csv:"SupplementaryDetails"`
	InformationToAccountOwner string `csv:"InformationToAccountOwner"`
}

// FlattenStatementLines returns one row per statement line of every message, in document order.
// The currency is taken from the opening balance of the message.
func FlattenStatementLines(messages []models.Message) []StatementLineRow {
	rows := make([]StatementLineRow, 0)
	for _, m := range messages {
		for _, l := range m.StatementLines {
			row := StatementLineRow{
				TransactionRefNo:          m.TransactionRefNo,
				AccountID:                 m.AccountID,
				StatementNo:               m.StatementNo,
				SequenceNo:                deref(m.SequenceNo),
				Currency:                  m.OpeningBalance.ISOCurrencyCode,
				ValueDate:                 l.ValueDate.String(),
				DebitCreditIndicator:      string(l.ExtDebitCreditIndicator),
				Amount:                    l.Amount.String(),
				SignedAmount:              l.SignedAmount().String(),
				FundsCode:                 deref(l.FundsCode),
				TransactionTypeIdentCode:  string(l.TransactionTypeIdentCode),
				CustomerRef:               l.CustomerRef,
				BankRef:                   deref(l.BankRef),
				SupplementaryDetails:      deref(l.SupplementaryDetails),
				InformationToAccountOwner: deref(l.InformationToAccountOwner),
			}
			if l.EntryDate != nil {
				row.EntryDate = l.EntryDate.String()
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteStatementLinesCSV writes the statement lines of messages as CSV with a header row.
func WriteStatementLinesCSV(w io.Writer, messages []models.Message, delimiter rune) error {
	if delimiter == 0 {
		delimiter = ','
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	rows := FlattenStatementLines(messages)
	if len(rows) == 0 {
		// gocsv only derives the header from elements, so write it directly.
		if err := csvWriter.Write(csvHeader()); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
		csvWriter.Flush()
		return csvWriter.Error()
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"TransactionRefNo", "AccountID", "StatementNo", "SequenceNo", "Currency",
		"ValueDate", "EntryDate", "DebitCreditIndicator", "Amount", "SignedAmount",
		"FundsCode", "TransactionTypeIdentCode", "CustomerRef", "BankRef",
		"SupplementaryDetails", "InformationToAccountOwner",
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
