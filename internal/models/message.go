package models

import (
	"github.com/shopspring/decimal"
)

// Message is one logical statement, opened by a transaction reference number (tag 20).
type Message struct {
	TransactionRefNo          string            `json:"transaction_ref_no" yaml:"transaction_ref_no"`
	RefToRelatedMsg           *string           `json:"ref_to_related_msg" yaml:"ref_to_related_msg"`
	AccountID                 string            `json:"account_id" yaml:"account_id"`
	StatementNo               string            `json:"statement_no" yaml:"statement_no"`
	SequenceNo                *string           `json:"sequence_no" yaml:"sequence_no"`
	OpeningBalance            Balance           `json:"opening_balance" yaml:"opening_balance"`
	StatementLines            []StatementLine   `json:"statement_lines" yaml:"statement_lines"`
	ClosingBalance            Balance           `json:"closing_balance" yaml:"closing_balance"`
	ClosingAvailableBalance   *AvailableBalance `json:"closing_available_balance" yaml:"closing_available_balance"`
	ForwardAvailableBalance   *AvailableBalance `json:"forward_available_balance" yaml:"forward_available_balance"`
	InformationToAccountOwner *string           `json:"information_to_account_owner" yaml:"information_to_account_owner"`
}

// Balance is a booked balance (tags 60 and 62).
type Balance struct {
	// IsIntermediate is true for the M variants of the tag, false for the F variants.
	IsIntermediate       bool            `json:"is_intermediate" yaml:"is_intermediate"`
	DebitCreditIndicator DebitOrCredit   `json:"debit_credit_indicator" yaml:"debit_credit_indicator"`
	Date                 Date            `json:"date" yaml:"date"`
	ISOCurrencyCode      string          `json:"iso_currency_code" yaml:"iso_currency_code"`
	Amount               decimal.Decimal `json:"amount" yaml:"amount"`
}

// SignedAmount returns the amount, negated for debit balances.
func (b Balance) SignedAmount() decimal.Decimal {
	if b.DebitCreditIndicator == Debit {
		return b.Amount.Neg()
	}
	return b.Amount
}

// AvailableBalance is a closing or forward available balance (tags 64 and 65).
type AvailableBalance struct {
	DebitCreditIndicator DebitOrCredit   `json:"debit_credit_indicator" yaml:"debit_credit_indicator"`
	Date                 Date            `json:"date" yaml:"date"`
	ISOCurrencyCode      string          `json:"iso_currency_code" yaml:"iso_currency_code"`
	Amount               decimal.Decimal `json:"amount" yaml:"amount"`
}

// StatementLine is a single transaction (tag 61), optionally followed by free text (tag 86).
type StatementLine struct {
	ValueDate                 Date                              `json:"value_date" yaml:"value_date"`
	EntryDate                 *Date                             `json:"entry_date" yaml:"entry_date"`
	ExtDebitCreditIndicator   ExtDebitOrCredit                  `json:"ext_debit_credit_indicator" yaml:"ext_debit_credit_indicator"`
	FundsCode                 *string                           `json:"funds_code" yaml:"funds_code"`
	Amount                    decimal.Decimal                   `json:"amount" yaml:"amount"`
	TransactionTypeIdentCode  TransactionTypeIdentificationCode `json:"transaction_type_ident_code" yaml:"transaction_type_ident_code"`
	CustomerRef               string                            `json:"customer_ref" yaml:"customer_ref"`
	BankRef                   *string                           `json:"bank_ref" yaml:"bank_ref"`
	SupplementaryDetails      *string                           `json:"supplementary_details" yaml:"supplementary_details"`
	InformationToAccountOwner *string                           `json:"information_to_account_owner" yaml:"information_to_account_owner"`
}

// SignedAmount returns the amount with the sign implied by the indicator.
func (s StatementLine) SignedAmount() decimal.Decimal {
	if s.ExtDebitCreditIndicator.IsDebit() {
		return s.Amount.Neg()
	}
	return s.Amount
}

// ComputedClosingBalance returns the signed opening balance plus every signed statement line.
func (m Message) ComputedClosingBalance() decimal.Decimal {
	total := m.OpeningBalance.SignedAmount()
	for _, l := range m.StatementLines {
		total = total.Add(l.SignedAmount())
	}
	return total
}

// Balanced reports whether the statement lines account for the difference between the
// opening and closing balances.
func (m Message) Balanced() bool {
	return m.ComputedClosingBalance().Equal(m.ClosingBalance.SignedAmount())
}
