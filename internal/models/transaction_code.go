package models

// TransactionTypeIdentificationCode is the three letter code of subfield 6 of a statement line.
type TransactionTypeIdentificationCode string

// Known transaction type identification codes.
const (
	CodeBNK TransactionTypeIdentificationCode = "BNK" // Securities related item - bank fees
	CodeBOE TransactionTypeIdentificationCode = "BOE" // Bill of exchange
	CodeBRF TransactionTypeIdentificationCode = "BRF" // Brokerage fee
	CodeCAR TransactionTypeIdentificationCode = "CAR" // Securities related item - corporate actions related
	CodeCAS TransactionTypeIdentificationCode = "CAS" // Securities related item - cash in lieu
	CodeCHG TransactionTypeIdentificationCode = "CHG" // Charges and other expenses
	CodeCHK TransactionTypeIdentificationCode = "CHK" // Cheques
	CodeCLR TransactionTypeIdentificationCode = "CLR" // Cash letters/cheques remittance
	CodeCMI TransactionTypeIdentificationCode = "CMI" // Cash management item - no detail
	CodeCMN TransactionTypeIdentificationCode = "CMN" // Cash management item - notional pooling
	CodeCMP TransactionTypeIdentificationCode = "CMP" // Compensation claims
	CodeCMS TransactionTypeIdentificationCode = "CMS" // Cash management item - sweeping
	CodeCMT TransactionTypeIdentificationCode = "CMT" // Cash management item - topping
	CodeCMZ TransactionTypeIdentificationCode = "CMZ" // Cash management item - zero balancing
	CodeCOL TransactionTypeIdentificationCode = "COL" // Collections
	CodeCOM TransactionTypeIdentificationCode = "COM" // Commission
	CodeCPN TransactionTypeIdentificationCode = "CPN" // Securities related item - coupon payments
	CodeDCR TransactionTypeIdentificationCode = "DCR" // Documentary credit
	CodeDDT TransactionTypeIdentificationCode = "DDT" // Direct debit item
	CodeDIS TransactionTypeIdentificationCode = "DIS" // Securities related item - gains disbursement
	CodeDIV TransactionTypeIdentificationCode = "DIV" // Securities related item - dividends
	CodeEQA TransactionTypeIdentificationCode = "EQA" // Equivalent amount
	CodeEXT TransactionTypeIdentificationCode = "EXT" // Securities related item - external transfer for own account
	CodeFEX TransactionTypeIdentificationCode = "FEX" // Foreign exchange
	CodeINT TransactionTypeIdentificationCode = "INT" // Interest
	CodeLBX TransactionTypeIdentificationCode = "LBX" // Lock box
	CodeLDP TransactionTypeIdentificationCode = "LDP" // Loan deposit
	CodeMAR TransactionTypeIdentificationCode = "MAR" // Securities related item - margin payments/receipts
	CodeMAT TransactionTypeIdentificationCode = "MAT" // Securities related item - maturity
	CodeMGT TransactionTypeIdentificationCode = "MGT" // Securities related item - management fees
	CodeMSC TransactionTypeIdentificationCode = "MSC" // Miscellaneous
	CodeNWI TransactionTypeIdentificationCode = "NWI" // Securities related item - new issues distribution
	CodeODC TransactionTypeIdentificationCode = "ODC" // Overdraft charge
	CodeOPT TransactionTypeIdentificationCode = "OPT" // Securities related item - options
	CodePCH TransactionTypeIdentificationCode = "PCH" // Securities related item - purchase
	CodePOP TransactionTypeIdentificationCode = "POP" // Securities related item - pair-off proceeds
	CodePRN TransactionTypeIdentificationCode = "PRN" // Securities related item - principal pay-down/pay-up
	CodeREC TransactionTypeIdentificationCode = "REC" // Securities related item - tax reclaim
	CodeRED TransactionTypeIdentificationCode = "RED" // Securities related item - redemption/withdrawal
	CodeRIG TransactionTypeIdentificationCode = "RIG" // Securities related item - rights
	CodeRTI TransactionTypeIdentificationCode = "RTI" // Returned item
	CodeSAL TransactionTypeIdentificationCode = "SAL" // Securities related item - sale
	CodeSEC TransactionTypeIdentificationCode = "SEC" // Securities
	CodeSLE TransactionTypeIdentificationCode = "SLE" // Securities related item - securities lending related
	CodeSTO TransactionTypeIdentificationCode = "STO" // Standing order
	CodeSTP TransactionTypeIdentificationCode = "STP" // Securities related item - stamp duty
	CodeSUB TransactionTypeIdentificationCode = "SUB" // Securities related item - subscription
	CodeSWP TransactionTypeIdentificationCode = "SWP" // Securities related item - SWAP payment
	CodeTAX TransactionTypeIdentificationCode = "TAX" // Securities related item - withholding tax payment
	CodeTCK TransactionTypeIdentificationCode = "TCK" // Travellers cheques
	CodeTCM TransactionTypeIdentificationCode = "TCM" // Securities related item - tripartite collateral management
	CodeTRA TransactionTypeIdentificationCode = "TRA" // Securities related item - internal transfer for own account
	CodeTRF TransactionTypeIdentificationCode = "TRF" // Transfer
	CodeTRN TransactionTypeIdentificationCode = "TRN" // Securities related item - transaction fee
	CodeUWC TransactionTypeIdentificationCode = "UWC" // Securities related item - underwriting commission
	CodeVDA TransactionTypeIdentificationCode = "VDA" // Value date adjustment
	CodeWAR TransactionTypeIdentificationCode = "WAR" // Securities related item - warrant
)

var transactionTypeIdentificationCodes = []TransactionTypeIdentificationCode{
	CodeBNK, CodeBOE, CodeBRF, CodeCAR, CodeCAS, CodeCHG, CodeCHK, CodeCLR, CodeCMI, CodeCMN,
	CodeCMP, CodeCMS, CodeCMT, CodeCMZ, CodeCOL, CodeCOM, CodeCPN, CodeDCR, CodeDDT, CodeDIS,
	CodeDIV, CodeEQA, CodeEXT, CodeFEX, CodeINT, CodeLBX, CodeLDP, CodeMAR, CodeMAT, CodeMGT,
	CodeMSC, CodeNWI, CodeODC, CodeOPT, CodePCH, CodePOP, CodePRN, CodeREC, CodeRED, CodeRIG,
	CodeRTI, CodeSAL, CodeSEC, CodeSLE, CodeSTO, CodeSTP, CodeSUB, CodeSWP, CodeTAX, CodeTCK,
	CodeTCM, CodeTRA, CodeTRF, CodeTRN, CodeUWC, CodeVDA, CodeWAR,
}

var transactionTypeIdentificationCodeSet = func() map[string]TransactionTypeIdentificationCode {
	set := make(map[string]TransactionTypeIdentificationCode, len(transactionTypeIdentificationCodes))
	for _, c := range transactionTypeIdentificationCodes {
		set[string(c)] = c
	}
	return set
}()

// ParseTransactionTypeIdentificationCode looks up a code. Matching is case-sensitive.
func ParseTransactionTypeIdentificationCode(s string) (TransactionTypeIdentificationCode, bool) {
	c, ok := transactionTypeIdentificationCodeSet[s]
	return c, ok
}

// AllTransactionTypeIdentificationCodes returns every known code in alphabetical order.
func AllTransactionTypeIdentificationCodes() []TransactionTypeIdentificationCode {
	out := make([]TransactionTypeIdentificationCode, len(transactionTypeIdentificationCodes))
	copy(out, transactionTypeIdentificationCodes)
	return out
}
