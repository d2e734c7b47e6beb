package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
)

const descriptionSeparator = "; "

// ProjectTransactions flattens the statement lines of msg into CSV rows, one per
// line, in source order. Debits and reversed credits carry a negative amount.
func ProjectTransactions(msg *domain.StatementMessage) (*domain.TransactionSet, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil statement message", apperrors.ErrConversion)
	}

	set := &domain.TransactionSet{Rows: make([]domain.TransactionRow, 0, len(msg.StatementLines))}
	for i := range msg.StatementLines {
		line := &msg.StatementLines[i]
		tx := &line.Transaction

		indicator, err := bookingIndicator(tx.Mark)
		if err != nil {
			return nil, fmt.Errorf("statement line %d: %w", i+1, err)
		}
		amount, err := normalize.SignedAmount(tx.Amount, indicator)
		if err != nil {
			return nil, fmt.Errorf("statement line %d: %w", i+1, err)
		}

		reference := tx.BankReference
		if reference == "" {
			reference = tx.CustomerReference
		}

		set.Rows = append(set.Rows, domain.TransactionRow{
			Date:        tx.ValueDate,
			Amount:      amount,
			Currency:    msg.OpeningBalance.Currency,
			Description: strings.Join(line.Narrative, descriptionSeparator),
			Reference:   reference,
		})
	}
	return set, nil
}

func bookingIndicator(mark domain.DebitCreditMark) (domain.CreditDebitIndicator, error) {
	if mark.IsReversal() {
		return normalize.ReversalToIndicator(mark)
	}
	return normalize.MarkToIndicator(mark)
}
