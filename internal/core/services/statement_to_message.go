package services

import (
	"fmt"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/core/narrative"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
)

// familyToTransactionType maps bank transaction family codes to MT940 transaction types.
var familyToTransactionType = map[string]string{
	"RCDT": "CRED",
	"ICDT": "DEBT",
	"MCRD": "CARD",
}

const defaultTransactionType = "NTRF"

// ToMessage projects a camt.053 statement onto an MT940 message.
func (t *Transcoder) ToMessage(doc *domain.StatementDocument) (*domain.StatementMessage, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil statement document", apperrors.ErrConversion)
	}
	stmt := doc.Statement()

	if stmt.Account.ID.IBAN == "" {
		return nil, fmt.Errorf("%w: IBAN is required for MT940 conversion", apperrors.ErrMissingField)
	}

	opening, err := resolveBalance(stmt.Balances, domain.RoleOpening)
	if err != nil {
		return nil, err
	}
	closing, err := resolveBalance(stmt.Balances, domain.RoleClosing)
	if err != nil {
		return nil, err
	}

	sequence := uint32(stmt.LegalSequenceNumber)
	msg := &domain.StatementMessage{
		Reference:       stmt.ID,
		AccountID:       stmt.Account.ID.IBAN,
		StatementNumber: uint32(stmt.ElectronicSequenceNumber),
		SequenceNumber:  &sequence,
	}

	if msg.OpeningBalance, err = toMessageBalance(opening); err != nil {
		return nil, fmt.Errorf("opening balance %s: %w", opening.Code(), err)
	}
	if msg.ClosingBalance, err = toMessageBalance(closing); err != nil {
		return nil, fmt.Errorf("closing balance %s: %w", closing.Code(), err)
	}

	if available := findBalance(stmt.Balances, domain.ClosingAvailable); available != nil {
		converted, err := toMessageBalance(available)
		if err != nil {
			return nil, fmt.Errorf("closing available balance: %w", err)
		}
		msg.ClosingAvailableBalance = &converted
	}

	if len(stmt.Entries) > 0 {
		msg.StatementLines = make([]domain.StatementLine, 0, len(stmt.Entries))
	}
	for i := range stmt.Entries {
		line, err := toStatementLine(&stmt.Entries[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		msg.StatementLines = append(msg.StatementLines, line)
	}

	return msg, nil
}

// resolveBalance picks the balance filling role: the most preferred type wins,
// and the first one in document order wins among balances of the same type.
func resolveBalance(balances []domain.Balance, role domain.BalanceRole) (*domain.Balance, error) {
	var (
		best     *domain.Balance
		bestPref int
	)
	for i := range balances {
		r, pref, ok := balances[i].Code().Resolution()
		if !ok || r != role {
			continue
		}
		if best == nil || pref < bestPref {
			best, bestPref = &balances[i], pref
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no %s balance found", apperrors.ErrMissingField, role)
	}
	return best, nil
}

func findBalance(balances []domain.Balance, code domain.BalanceType) *domain.Balance {
	for i := range balances {
		if balances[i].Code() == code {
			return &balances[i]
		}
	}
	return nil
}

func toMessageBalance(b *domain.Balance) (domain.MessageBalance, error) {
	date, err := normalize.ParseDate(b.Date.Date)
	if err != nil {
		return domain.MessageBalance{}, err
	}
	mark, err := normalize.IndicatorToMark(b.Indicator)
	if err != nil {
		return domain.MessageBalance{}, err
	}
	amount, err := normalize.ParseAmount(b.Amount.Value)
	if err != nil {
		return domain.MessageBalance{}, err
	}
	return domain.MessageBalance{
		ValueDate: date,
		Mark:      mark,
		Currency:  b.Amount.Currency,
		Amount:    amount,
	}, nil
}

func toStatementLine(entry *domain.Entry) (domain.StatementLine, error) {
	valueDate, err := normalize.ParseDate(entry.ValueDate.Date)
	if err != nil {
		return domain.StatementLine{}, err
	}

	// The entry date is advisory: an unparsable booking date just drops it.
	entryDate := ""
	if booked, err := normalize.ParseDate(entry.BookingDate.Date); err == nil {
		entryDate = normalize.FormatMonthDay(booked)
	}

	mark, err := normalize.IndicatorToMark(entry.Indicator)
	if err != nil {
		return domain.StatementLine{}, err
	}
	if entry.ReversalIndicator {
		mark = reversalMark(mark)
	}

	amount, err := normalize.ParseAmount(entry.Amount.Value)
	if err != nil {
		return domain.StatementLine{}, err
	}

	return domain.StatementLine{
		Transaction: domain.TransactionRecord{
			ValueDate:         valueDate,
			EntryDate:         entryDate,
			Mark:              mark,
			Amount:            amount,
			TransactionType:   transactionType(entry.BankTransactionCode.Domain.Family.Code),
			CustomerReference: entry.AccountServicerReference,
			BankReference:     entry.Reference,
		},
		Narrative: buildNarrative(entry),
	}, nil
}

func transactionType(familyCode string) string {
	if tt, ok := familyToTransactionType[familyCode]; ok {
		return tt
	}
	return defaultTransactionType
}

// reversalMark turns the booking direction of a reversed entry into its MT940 mark.
func reversalMark(booked domain.DebitCreditMark) domain.DebitCreditMark {
	if booked == domain.MarkDebit {
		return domain.MarkReversalCredit
	}
	return domain.MarkReversalDebit
}

func buildNarrative(entry *domain.Entry) []string {
	details := entry.FirstDetails()

	endToEndID := details.EndToEndID()
	if endToEndID == domain.Placeholder {
		endToEndID = ""
	}

	var b narrative.Builder
	if code := entry.BankTransactionCode.Proprietary.Code; code != "" {
		b.Text(code)
	}
	return b.TaggedIf(narrative.TagEndToEndID, endToEndID).
		TaggedIf(narrative.TagCreditor, details.CreditorAccountID()).
		TaggedIf(narrative.TagAcceptance, details.AcceptanceDateTime()).
		Tagged(narrative.TagStatus, entry.Status).
		Lines()
}
