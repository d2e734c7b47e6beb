package domain

// CreditDebitIndicator is the 4-letter fund direction code used by camt.053.
type CreditDebitIndicator string

const (
	Debit  CreditDebitIndicator = "DBIT"
	Credit CreditDebitIndicator = "CRDT"
)

// DebitCreditMark is the fund direction mark used by MT940 balances and statement lines.
// Balances only ever carry C or D; statement lines may also carry the reversal marks.
type DebitCreditMark string

const (
	MarkDebit          DebitCreditMark = "D"
	MarkCredit         DebitCreditMark = "C"
	MarkReversalCredit DebitCreditMark = "RC" // reversal of a credit, books as a debit
	MarkReversalDebit  DebitCreditMark = "RD" // reversal of a debit, books as a credit
)

// IsReversal reports whether m is one of the reversal marks.
func (m DebitCreditMark) IsReversal() bool {
	return m == MarkReversalCredit || m == MarkReversalDebit
}

// Amount is a currency-tagged decimal literal, e.g. <Amt Ccy="EUR">12.50</Amt>.
type Amount struct {
	Currency string `xml:"Ccy,attr"`
	Value    string `xml:",chardata"`
}

// DateChoice wraps a single <Dt> element, used for balance, booking and value dates.
type DateChoice struct {
	Date string `xml:"Dt"`
}

// Placeholder is the literal used wherever a required camt.053 field has no source value.
const Placeholder = "NOTPROVIDED"
