package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRow is one flat CSV transaction record. Debits carry a negative amount.
type TransactionRow struct {
	Date        time.Time       `validate:"required"`
	Amount      decimal.Decimal `validate:"-"`
	Currency    string          `validate:"required,len=3,alpha,uppercase"`
	Description string          `validate:"max=512"`
	Reference   string          `validate:"max=140"`
}

// TransactionSet is an ordered list of rows.
type TransactionSet struct {
	Rows []TransactionRow
}
