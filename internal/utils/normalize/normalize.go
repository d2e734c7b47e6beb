// Package normalize converts date, amount and credit/debit literals between the
// vocabularies of camt.053 and MT940. Every function fails closed: input outside
// the documented domain is an error, never a default.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	DateTimeLayout = "2006-01-02T15:04:05"
	DateLayout     = "2006-01-02"
)

var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParseDate accepts a combined date-time literal (YYYY-MM-DDThh:mm:ss) or a bare
// date literal (YYYY-MM-DD), in that order, and returns the calendar date at
// midnight UTC.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if t, err := time.Parse(DateTimeLayout, text); err == nil {
		return truncateToDate(t), nil
	}
	if t, err := time.Parse(DateLayout, text); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date format: %q", apperrors.ErrParseDate, text)
}

// ParseAmount parses a signed decimal literal. Thousands separators, currency
// symbols and exponents are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if !amountPattern.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, text)
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidAmount, text, err)
	}
	return amount, nil
}

// IndicatorToMark translates DBIT/CRDT into the D/C mark.
func IndicatorToMark(indicator domain.CreditDebitIndicator) (domain.DebitCreditMark, error) {
	switch indicator {
	case domain.Debit:
		return domain.MarkDebit, nil
	case domain.Credit:
		return domain.MarkCredit, nil
	default:
		return "", fmt.Errorf("%w: invalid debit/credit indicator: %q", apperrors.ErrInvalidIndicator, string(indicator))
	}
}

// MarkToIndicator translates the D/C mark into DBIT/CRDT. Reversal marks are not
// accepted here; see ReversalToIndicator.
func MarkToIndicator(mark domain.DebitCreditMark) (domain.CreditDebitIndicator, error) {
	switch mark {
	case domain.MarkDebit:
		return domain.Debit, nil
	case domain.MarkCredit:
		return domain.Credit, nil
	default:
		return "", fmt.Errorf("%w: invalid debit/credit mark: %q", apperrors.ErrInvalidIndicator, string(mark))
	}
}

// ReversalToIndicator returns the booking direction of a reversal mark: a reversed
// credit books as a debit and a reversed debit as a credit.
func ReversalToIndicator(mark domain.DebitCreditMark) (domain.CreditDebitIndicator, error) {
	switch mark {
	case domain.MarkReversalCredit:
		return domain.Debit, nil
	case domain.MarkReversalDebit:
		return domain.Credit, nil
	default:
		return "", fmt.Errorf("%w: not a reversal mark: %q", apperrors.ErrInvalidIndicator, string(mark))
	}
}

// SignedAmount applies the fund direction to an unsigned amount: debits are negative.
func SignedAmount(amount decimal.Decimal, indicator domain.CreditDebitIndicator) (decimal.Decimal, error) {
	switch indicator {
	case domain.Debit:
		return amount.Abs().Neg(), nil
	case domain.Credit:
		return amount.Abs(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: invalid debit/credit indicator: %q", apperrors.ErrInvalidIndicator, string(indicator))
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
