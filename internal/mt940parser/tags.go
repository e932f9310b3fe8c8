package mt940parser

import (
	"errors"
	"strings"

	"fjacquet/mt940/internal/currencyutils"
	"fjacquet/mt940/internal/dateutils"
	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Known tags.
const (
	Tag20  = "20"
	Tag21  = "21"
	Tag25  = "25"
	Tag28  = "28"
	Tag28C = "28C"
	Tag60M = "60M"
	Tag60F = "60F"
	Tag61  = "61"
	Tag86  = "86"
	Tag62M = "62M"
	Tag62F = "62F"
	Tag64  = "64"
	Tag65  = "65"
)

var knownTags = map[string]bool{
	Tag20: true, Tag21: true, Tag25: true, Tag28: true, Tag28C: true,
	Tag60M: true, Tag60F: true, Tag61: true, Tag86: true,
	Tag62M: true, Tag62F: true, Tag64: true, Tag65: true,
}

// IsKnownTag reports whether tag belongs to the supported MT940 vocabulary.
func IsKnownTag(tag string) bool {
	return knownTags[tag]
}

func subgrammarError(field models.Field, rule, msg string) *parsererror.ParseError {
	return parsererror.Grammar(field.Tag, &parsererror.GrammarError{Rule: rule, Input: field.Value, Msg: msg})
}

// parseReference decodes tags 20 and 21.
func parseReference(field models.Field) (string, error) {
	if !tag20Regex.MatchString(field.Value) {
		return "", subgrammarError(field, "tag_"+field.Tag+"_field", "expected 1 to 16 SWIFT characters")
	}
	return field.Value, nil
}

// parseAccountID decodes tag 25.
func parseAccountID(field models.Field) (string, error) {
	if !tag25Regex.MatchString(field.Value) {
		return "", subgrammarError(field, "tag_25_field", "expected 1 to 35 SWIFT characters")
	}
	return field.Value, nil
}

// parseStatementNumber decodes tags 28 and 28C into the statement number and the optional
// sequence number.
func parseStatementNumber(field models.Field) (string, *string, error) {
	m := tag28Regex.FindStringSubmatch(field.Value)
	if m == nil {
		return "", nil, subgrammarError(field, "tag_28_field", "expected statement number[/sequence number]")
	}
	var seq *string
	if strings.Contains(field.Value, "/") {
		s := m[2]
		seq = &s
	}
	return m[1], seq, nil
}

// parseBalanceFields decodes the common layout of tags 60, 62, 64 and 65:
// indicator, YYMMDD date, currency and amount.
func parseBalanceFields(field models.Field) (models.AvailableBalance, error) {
	m := balanceRegex.FindStringSubmatch(field.Value)
	if m == nil {
		return models.AvailableBalance{}, subgrammarError(field, "balance", "expected indicator, date, currency and amount")
	}

	indicator, err := parseDebitOrCredit(field.Tag, m[1])
	if err != nil {
		return models.AvailableBalance{}, err
	}
	date, err := parseDate(field.Tag, m[2])
	if err != nil {
		return models.AvailableBalance{}, err
	}
	amount, err := parseAmount(field.Tag, m[4])
	if err != nil {
		return models.AvailableBalance{}, err
	}

	return models.AvailableBalance{
		DebitCreditIndicator: indicator,
		Date:                 date,
		ISOCurrencyCode:      m[3],
		Amount:               amount,
	}, nil
}

// parseBalance decodes tags 60M/60F and 62M/62F.
func parseBalance(field models.Field) (models.Balance, error) {
	b, err := parseBalanceFields(field)
	if err != nil {
		return models.Balance{}, err
	}
	return models.Balance{
		IsIntermediate:       strings.HasSuffix(field.Tag, "M"),
		DebitCreditIndicator: b.DebitCreditIndicator,
		Date:                 b.Date,
		ISOCurrencyCode:      b.ISOCurrencyCode,
		Amount:               b.Amount,
	}, nil
}

// parseAvailableBalance decodes tags 64 and 65.
func parseAvailableBalance(field models.Field) (models.AvailableBalance, error) {
	return parseBalanceFields(field)
}

// parseStatementLine decodes tag 61.
func parseStatementLine(field models.Field) (models.StatementLine, error) {
	m := tag61Regex.FindStringSubmatch(field.Value)
	if m == nil {
		return models.StatementLine{}, subgrammarError(field, "tag_61_field", "malformed statement line")
	}
	dateStr, shortDateStr, indicatorStr, fundsCode, amountStr, typeCode, refs, supplementary :=
		m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]

	valueDate, err := parseDate(field.Tag, dateStr)
	if err != nil {
		return models.StatementLine{}, err
	}

	var entryDate *models.Date
	if shortDateStr != "" {
		d, err := dateutils.ParseMT940ShortDate(valueDate.Year(), shortDateStr)
		if err != nil {
			return models.StatementLine{}, dateError(field.Tag, err)
		}
		entryDate = &d
	}

	indicator, err := parseExtDebitOrCredit(field.Tag, indicatorStr)
	if err != nil {
		return models.StatementLine{}, err
	}

	amount, err := parseAmount(field.Tag, amountStr)
	if err != nil {
		return models.StatementLine{}, err
	}

	// The first character is the N/F discriminator, the code follows it.
	code, ok := models.ParseTransactionTypeIdentificationCode(typeCode[1:])
	if !ok {
		return models.StatementLine{}, parsererror.InvalidTransactionIdentCode(field.Tag, typeCode)
	}

	customerRef, bankRef := refs, ""
	hasBankRef := false
	if i := strings.Index(refs, "//"); i >= 0 {
		customerRef, bankRef, hasBankRef = refs[:i], refs[i+2:], true
	}
	if !refRegex.MatchString(customerRef) {
		return models.StatementLine{}, subgrammarError(field, "customer_ref", "expected 1 to 16 SWIFT characters")
	}
	if hasBankRef && !refRegex.MatchString(bankRef) {
		return models.StatementLine{}, subgrammarError(field, "bank_ref", "expected 1 to 16 SWIFT characters")
	}

	hasSupplementary := strings.Contains(field.Value, "\n")
	if hasSupplementary && !supplementaryRegex.MatchString(supplementary) {
		return models.StatementLine{}, subgrammarError(field, "supplementary_details", "expected 1 to 34 SWIFT characters")
	}

	line := models.StatementLine{
		ValueDate:                valueDate,
		EntryDate:                entryDate,
		ExtDebitCreditIndicator:  indicator,
		Amount:                   amount,
		TransactionTypeIdentCode: code,
		CustomerRef:              customerRef,
	}
	if fundsCode != "" {
		line.FundsCode = &fundsCode
	}
	if hasBankRef {
		line.BankRef = &bankRef
	}
	if hasSupplementary {
		line.SupplementaryDetails = &supplementary
	}
	return line, nil
}

// parseInformation decodes tag 86: at most 6 lines of at most 65 SWIFT characters.
func parseInformation(field models.Field) (string, error) {
	lines := strings.Split(field.Value, "\n")
	if len(lines) > maxTag86Lines {
		return "", subgrammarError(field, "tag_86_field", "more than 6 lines of details")
	}
	for _, l := range lines {
		if !tag86LineRegex.MatchString(l) {
			return "", subgrammarError(field, "tag_86_field", "expected lines of at most 65 SWIFT characters")
		}
	}
	return field.Value, nil
}

func parseDebitOrCredit(tag, s string) (models.DebitOrCredit, error) {
	switch s {
	case "C":
		return models.Credit, nil
	case "D":
		return models.Debit, nil
	}
	return "", parsererror.VariantNotFound(tag, &parsererror.VariantNotFoundError{Value: s})
}

// parseExtDebitOrCredit maps the reversal marks the way existing consumers expect:
// "RD" is a reverse credit and "RC" a reverse debit.
func parseExtDebitOrCredit(tag, s string) (models.ExtDebitOrCredit, error) {
	switch s {
	case "C":
		return models.ExtCredit, nil
	case "D":
		return models.ExtDebit, nil
	case "RD":
		return models.ExtReverseCredit, nil
	case "RC":
		return models.ExtReverseDebit, nil
	}
	return "", parsererror.VariantNotFound(tag, &parsererror.VariantNotFoundError{Value: s})
}

func parseDate(tag, s string) (models.Date, error) {
	d, err := dateutils.ParseMT940Date(s)
	if err != nil {
		return models.Date{}, dateError(tag, err)
	}
	return d, nil
}

func dateError(tag string, err error) error {
	var dateErr *parsererror.DateError
	if errors.As(err, &dateErr) {
		return parsererror.Date(tag, dateErr)
	}
	return err
}

func parseAmount(tag, s string) (decimal.Decimal, error) {
	a, err := currencyutils.ParseMT940Amount(s)
	if err != nil {
		var amountErr *parsererror.AmountError
		if errors.As(err, &amountErr) {
			return a, parsererror.Amount(tag, amountErr)
		}
		return a, err
	}
	return a, nil
}
