package normalize

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of fraction digits written for camt.053 amounts.
const AmountPrecision = 2

// FormatAmount formats an amount with exactly two fraction digits.
// Example: 1000 returns "1000.00", 12.345 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision)
}

// FormatWithPrecision formats an amount with the given number of fraction digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime formats t as YYYY-MM-DDThh:mm:ss.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatStartOfDay formats the date of t at 00:00:00.
func FormatStartOfDay(t time.Time) string {
	return t.Format(DateLayout) + "T00:00:00"
}

// FormatEndOfDay formats the date of t at 23:59:59.
func FormatEndOfDay(t time.Time) string {
	return t.Format(DateLayout) + "T23:59:59"
}

// FormatMonthDay formats t as the 4-digit MMDD token used for MT940 entry dates.
func FormatMonthDay(t time.Time) string {
	return t.Format("0102")
}
