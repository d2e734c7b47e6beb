package mt940

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
	"github.com/shopspring/decimal"
)

// Serialize writes msg as a block 4 with CRLF line endings, closed by "-}".
func (c *Codec) Serialize(msg *domain.StatementMessage, w io.Writer) error {
	if msg == nil {
		return fmt.Errorf("%w: nil statement message", apperrors.ErrConversion)
	}
	if msg.Reference == "" {
		return fmt.Errorf("%w: field :20: (transaction reference)", apperrors.ErrMissingField)
	}
	if msg.AccountID == "" {
		return fmt.Errorf("%w: field :25: (account identification)", apperrors.ErrMissingField)
	}

	var b strings.Builder
	b.WriteString("{4:" + lineBreak)
	writeField(&b, tagReference, msg.Reference)
	if msg.RelatedReference != "" {
		writeField(&b, tagRelatedReference, msg.RelatedReference)
	}
	writeField(&b, tagAccount, msg.AccountID)
	writeField(&b, tagStatementNumber, formatStatementNumber(msg))

	opening, err := formatBalance(msg.OpeningBalance)
	if err != nil {
		return fmt.Errorf(":60F: %w", err)
	}
	writeField(&b, tagOpeningFinal, opening)

	for i := range msg.StatementLines {
		line := &msg.StatementLines[i]
		value, err := formatStatementLine(&line.Transaction)
		if err != nil {
			return fmt.Errorf(":61: line %d: %w", i+1, err)
		}
		writeField(&b, tagStatementLine, value)
		if details := line.Transaction.SupplementaryDetails; details != "" {
			b.WriteString(details + lineBreak)
		}
		if len(line.Narrative) > 0 {
			writeField(&b, tagNarrative, strings.Join(line.Narrative, lineBreak))
		}
	}

	closing, err := formatBalance(msg.ClosingBalance)
	if err != nil {
		return fmt.Errorf(":62F: %w", err)
	}
	writeField(&b, tagClosingFinal, closing)

	if msg.ClosingAvailableBalance != nil {
		available, err := formatBalance(*msg.ClosingAvailableBalance)
		if err != nil {
			return fmt.Errorf(":64: %w", err)
		}
		writeField(&b, tagClosingAvailable, available)
	}
	b.WriteString("-}" + lineBreak)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: write MT940: %v", apperrors.ErrMalformedInput, err)
	}
	return nil
}

func writeField(b *strings.Builder, tag, value string) {
	b.WriteString(":" + tag + ":" + value + lineBreak)
}

func formatStatementNumber(msg *domain.StatementMessage) string {
	if msg.SequenceNumber == nil {
		return fmt.Sprintf("%05d", msg.StatementNumber)
	}
	return fmt.Sprintf("%05d/%03d", msg.StatementNumber, *msg.SequenceNumber)
}

func formatBalance(bal domain.MessageBalance) (string, error) {
	if bal.Mark != domain.MarkCredit && bal.Mark != domain.MarkDebit {
		return "", fmt.Errorf("%w: invalid balance mark %q", apperrors.ErrInvalidIndicator, string(bal.Mark))
	}
	if len(bal.Currency) != 3 {
		return "", fmt.Errorf("%w: currency %q", apperrors.ErrMissingField, bal.Currency)
	}
	return string(bal.Mark) + bal.ValueDate.Format(swiftDateLayout) + bal.Currency + formatSwiftAmount(bal.Amount), nil
}

func formatStatementLine(tx *domain.TransactionRecord) (string, error) {
	switch tx.Mark {
	case domain.MarkCredit, domain.MarkDebit, domain.MarkReversalCredit, domain.MarkReversalDebit:
	default:
		return "", fmt.Errorf("%w: invalid statement line mark %q", apperrors.ErrInvalidIndicator, string(tx.Mark))
	}
	if n := len(tx.EntryDate); n != 0 && n != 4 {
		return "", fmt.Errorf("%w: entry date %q is not MMDD", apperrors.ErrConversion, tx.EntryDate)
	}
	if len(tx.TransactionType) != 4 {
		return "", fmt.Errorf("%w: transaction type %q", apperrors.ErrConversion, tx.TransactionType)
	}

	customerRef := tx.CustomerReference
	if customerRef == "" {
		customerRef = noReference
	}

	var b strings.Builder
	b.WriteString(tx.ValueDate.Format(swiftDateLayout))
	b.WriteString(tx.EntryDate)
	b.WriteString(string(tx.Mark))
	b.WriteString(formatSwiftAmount(tx.Amount))
	b.WriteString(tx.TransactionType)
	b.WriteString(customerRef)
	if tx.BankReference != "" {
		b.WriteString("//" + tx.BankReference)
	}
	return b.String(), nil
}

// formatSwiftAmount writes the magnitude with two decimals and a decimal comma.
func formatSwiftAmount(amount decimal.Decimal) string {
	return strings.Replace(normalize.FormatAmount(amount.Abs()), ".", ",", 1)
}
