package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementMessage is the MT940 customer statement message.
type StatementMessage struct {
	Reference        string // :20:
	RelatedReference string // :21:, optional
	AccountID        string // :25:
	StatementNumber  uint32 // :28C: statement number
	SequenceNumber   *uint32

	OpeningBalance          MessageBalance  // :60F:
	StatementLines          []StatementLine // :61: + :86:
	ClosingBalance          MessageBalance  // :62F:
	ClosingAvailableBalance *MessageBalance // :64:, optional
}

// MessageBalance is a dated, signed balance in a single currency.
type MessageBalance struct {
	ValueDate time.Time
	Mark      DebitCreditMark
	Currency  string
	Amount    decimal.Decimal
}

// StatementLine pairs one transaction record with its narrative lines.
type StatementLine struct {
	Transaction TransactionRecord
	Narrative   []string
}

// TransactionRecord is the content of one :61: field.
type TransactionRecord struct {
	ValueDate            time.Time
	EntryDate            string // MMDD booking date token, empty when omitted
	Mark                 DebitCreditMark
	Amount               decimal.Decimal
	TransactionType      string
	CustomerReference    string
	BankReference        string
	SupplementaryDetails string
}
