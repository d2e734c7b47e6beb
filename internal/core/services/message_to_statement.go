package services

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/core/narrative"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
	"github.com/shopspring/decimal"
)

const (
	entryStatusBooked      = "BOOK"
	domainCodePayments     = "PMNT"
	subFamilyStandingOrder = "STDO"
	proprietaryIssuer      = "BANK"
	detailCurrency         = "EUR"
)

// transactionTypeToFamily is the reverse of familyToTransactionType.
var transactionTypeToFamily = map[string]string{
	"CRED": "RCDT",
	"DEBT": "ICDT",
	"CARD": "MCRD",
}

const defaultFamilyCode = "PMNT"

// ToDocument expands an MT940 message into a camt.053 statement. Fields the
// message does not carry are filled with domain.Placeholder.
func (t *Transcoder) ToDocument(msg *domain.StatementMessage) (*domain.StatementDocument, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil statement message", apperrors.ErrConversion)
	}

	created := normalize.FormatDateTime(t.clock.Now())
	currency := msg.OpeningBalance.Currency

	stmt := domain.Statement{
		ID:                       msg.Reference,
		ElectronicSequenceNumber: int(msg.StatementNumber),
		CreationDateTime:         created,
		Period: domain.Period{
			FromDateTime: normalize.FormatStartOfDay(msg.OpeningBalance.ValueDate),
			ToDateTime:   normalize.FormatEndOfDay(msg.ClosingBalance.ValueDate),
		},
		Account: placeholderAccount(msg.AccountID, currency),
	}
	if msg.SequenceNumber != nil {
		stmt.LegalSequenceNumber = int(*msg.SequenceNumber)
	}

	opening, err := toDocumentBalance(domain.OpeningBooked, msg.OpeningBalance)
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}
	closing, err := toDocumentBalance(domain.ClosingBooked, msg.ClosingBalance)
	if err != nil {
		return nil, fmt.Errorf("closing balance: %w", err)
	}
	stmt.Balances = []domain.Balance{opening, closing}
	if msg.ClosingAvailableBalance != nil {
		available, err := toDocumentBalance(domain.ClosingAvailable, *msg.ClosingAvailableBalance)
		if err != nil {
			return nil, fmt.Errorf("closing available balance: %w", err)
		}
		stmt.Balances = append(stmt.Balances, available)
	}

	summary, err := summarize(msg.StatementLines)
	if err != nil {
		return nil, err
	}
	stmt.TransactionSummary = summary

	if len(msg.StatementLines) > 0 {
		stmt.Entries = make([]domain.Entry, 0, len(msg.StatementLines))
	}
	for i := range msg.StatementLines {
		entry, err := t.toEntry(i+1, currency, &msg.StatementLines[i])
		if err != nil {
			return nil, fmt.Errorf("statement line %d: %w", i+1, err)
		}
		stmt.Entries = append(stmt.Entries, entry)
	}

	return &domain.StatementDocument{
		BkToCstmrStmt: domain.BankToCustomerStatement{
			GroupHeader: domain.GroupHeader{
				MessageID:        msg.Reference,
				CreationDateTime: created,
			},
			Statement: stmt,
		},
	}, nil
}

func placeholderAccount(iban, currency string) domain.Account {
	return domain.Account{
		ID:       domain.AccountID{IBAN: iban},
		Currency: currency,
		Name:     domain.Placeholder,
		Owner: domain.Owner{
			Name: domain.Placeholder,
			PostalAddress: domain.PostalAddress{
				StreetName: domain.Placeholder,
				TownName:   domain.Placeholder,
				Country:    domain.Placeholder,
			},
			ID: domain.OwnerID{
				OrganisationID: domain.OrganisationID{
					Other: domain.GenericID{
						ID:         domain.Placeholder,
						SchemeName: domain.SchemeName{Code: domain.Placeholder},
					},
				},
			},
		},
		Servicer: domain.Servicer{
			FinancialInstitution: domain.FinancialInstitutionID{
				BIC:  domain.Placeholder,
				Name: domain.Placeholder,
			},
		},
	}
}

func toDocumentBalance(code domain.BalanceType, b domain.MessageBalance) (domain.Balance, error) {
	indicator, err := normalize.MarkToIndicator(b.Mark)
	if err != nil {
		return domain.Balance{}, err
	}
	return domain.NewBalance(
		code,
		domain.Amount{Currency: b.Currency, Value: normalize.FormatAmount(b.Amount)},
		indicator,
		normalize.FormatDate(b.ValueDate),
	), nil
}

// summarize counts and sums the plain credit and debit lines. Reversals count
// towards the total only.
func summarize(lines []domain.StatementLine) (*domain.TransactionSummary, error) {
	var creditCount, debitCount int
	creditSum, debitSum := decimal.Zero, decimal.Zero
	for i := range lines {
		tx := &lines[i].Transaction
		switch tx.Mark {
		case domain.MarkCredit:
			creditCount++
			creditSum = creditSum.Add(tx.Amount)
		case domain.MarkDebit:
			debitCount++
			debitSum = debitSum.Add(tx.Amount)
		case domain.MarkReversalCredit, domain.MarkReversalDebit:
			// total only
		default:
			return nil, fmt.Errorf("%w: statement line %d: invalid debit/credit mark: %q",
				apperrors.ErrInvalidIndicator, i+1, string(tx.Mark))
		}
	}

	net := creditSum.Sub(debitSum)
	netIndicator := domain.Credit
	if net.IsNegative() {
		netIndicator = domain.Debit
	}

	return &domain.TransactionSummary{
		TotalEntries: domain.TotalEntries{
			NumberOfEntries:     strconv.Itoa(len(lines)),
			TotalNetEntryAmount: normalize.FormatAmount(net.Abs()),
			Indicator:           netIndicator,
		},
		TotalCreditEntries: domain.NumberAndSum{
			NumberOfEntries: strconv.Itoa(creditCount),
			Sum:             normalize.FormatAmount(creditSum),
		},
		TotalDebitEntries: domain.NumberAndSum{
			NumberOfEntries: strconv.Itoa(debitCount),
			Sum:             normalize.FormatAmount(debitSum),
		},
	}, nil
}

func (t *Transcoder) toEntry(seq int, currency string, line *domain.StatementLine) (domain.Entry, error) {
	tx := &line.Transaction

	indicator, err := bookingIndicator(tx.Mark)
	if err != nil {
		return domain.Entry{}, err
	}

	valueDate := normalize.FormatDate(tx.ValueDate)
	amount := normalize.FormatAmount(tx.Amount)

	family, ok := transactionTypeToFamily[tx.TransactionType]
	if !ok {
		family = defaultFamilyCode
	}

	return domain.Entry{
		Reference:                strconv.Itoa(seq),
		Amount:                   domain.Amount{Currency: currency, Value: amount},
		Indicator:                indicator,
		ReversalIndicator:        tx.Mark.IsReversal(),
		Status:                   entryStatusBooked,
		BookingDate:              domain.DateChoice{Date: valueDate},
		ValueDate:                domain.DateChoice{Date: valueDate},
		AccountServicerReference: tx.CustomerReference,
		BankTransactionCode: domain.BankTransactionCode{
			Domain: domain.TransactionDomain{
				Code: domainCodePayments,
				Family: domain.TransactionFamily{
					Code:          family,
					SubFamilyCode: subFamilyStandingOrder,
				},
			},
			Proprietary: domain.ProprietaryCode{
				Code:   tx.TransactionType,
				Issuer: proprietaryIssuer,
			},
		},
		Details: domain.EntryDetails{
			TransactionDetails: []domain.TransactionDetails{t.toTransactionDetails(currency, line)},
		},
	}, nil
}

func (t *Transcoder) toTransactionDetails(currency string, line *domain.StatementLine) domain.TransactionDetails {
	tx := &line.Transaction

	tags := narrative.Decode(line.Narrative)

	endToEndID := tx.BankReference
	if found, ok := tags[narrative.TagEndToEndID]; ok {
		endToEndID = found
	}
	if endToEndID == "" {
		endToEndID = domain.Placeholder
	}

	amountCurrency := detailCurrency
	if t.detailCurrencyFromAccount {
		amountCurrency = currency
	}

	details := domain.TransactionDetails{
		References: &domain.References{EndToEndID: endToEndID},
		AmountDetails: &domain.AmountDetails{
			TransactionAmount: domain.TransactionAmount{
				Amount: domain.Amount{Currency: amountCurrency, Value: normalize.FormatAmount(tx.Amount)},
			},
		},
		RelatedDates: &domain.RelatedDates{
			AcceptanceDateTime: normalize.FormatStartOfDay(tx.ValueDate),
		},
	}

	if creditor := tags[narrative.TagCreditor]; creditor != "" {
		details.RelatedParties = &domain.RelatedParties{
			CreditorAccount: &domain.CounterpartyAccount{
				ID: domain.CounterpartyAccountID{Other: &domain.OtherID{ID: creditor}},
			},
		}
	}

	return details
}
