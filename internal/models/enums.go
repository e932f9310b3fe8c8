package models

// DebitOrCredit is the debit/credit mark of a balance.
type DebitOrCredit string

const (
	Debit  DebitOrCredit = "Debit"
	Credit DebitOrCredit = "Credit"
)

// ExtDebitOrCredit is the debit/credit mark of a statement line, which may also be a reversal.
type ExtDebitOrCredit string

const (
	ExtDebit         ExtDebitOrCredit = "Debit"
	ExtCredit        ExtDebitOrCredit = "Credit"
	ExtReverseDebit  ExtDebitOrCredit = "ReverseDebit"
	ExtReverseCredit ExtDebitOrCredit = "ReverseCredit"
)

// IsDebit reports whether the line reduces the account balance.
func (e ExtDebitOrCredit) IsDebit() bool {
	return e == ExtDebit || e == ExtReverseCredit
}
