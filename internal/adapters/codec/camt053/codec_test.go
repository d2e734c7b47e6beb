package camt053_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/SscSPs/statement_converter/internal/adapters/codec/camt053"
	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T) *domain.StatementDocument {
	t.Helper()
	f, err := os.Open("testdata/statement.xml")
	require.NoError(t, err)
	defer f.Close()

	doc, err := camt053.NewCodec().Parse(f)
	require.NoError(t, err)
	return doc
}

func TestParse(t *testing.T) {
	doc := parseFixture(t)

	assert.Equal(t, domain.CAMT053Namespace, doc.Namespace)
	assert.Equal(t, "XXX24Y4XXX1Y000000001", doc.BkToCstmrStmt.GroupHeader.MessageID)
	assert.Equal(t, "2023-04-20T23:24:31", doc.BkToCstmrStmt.GroupHeader.CreationDateTime)

	stmt := doc.Statement()
	assert.Equal(t, "XXX24Y4XXX1Y000000001", stmt.ID)
	assert.Equal(t, 1, stmt.ElectronicSequenceNumber)
	assert.Equal(t, "DKK", stmt.Account.Currency)
	assert.Equal(t, "DK8030000001234567", stmt.Account.ID.IBAN)
	assert.Equal(t, "Copenhagen", stmt.Account.Owner.PostalAddress.TownName)
	assert.Equal(t, "12345678", stmt.Account.Owner.ID.OrganisationID.Other.ID)
	assert.Equal(t, "DABADKKK", stmt.Account.Servicer.FinancialInstitution.BIC)

	require.Len(t, stmt.Balances, 3)
	assert.Equal(t, domain.OpeningAvailable, stmt.Balances[0].Code())
	assert.Equal(t, domain.Amount{Currency: "DKK", Value: "1000.00"}, stmt.Balances[0].Amount)
	assert.Equal(t, domain.Credit, stmt.Balances[0].Indicator)
	assert.Equal(t, "2023-04-01", stmt.Balances[0].Date.Date)

	require.Len(t, stmt.Entries, 2)
	entry := stmt.Entries[0]
	assert.Equal(t, "1", entry.Reference)
	assert.Equal(t, domain.Debit, entry.Indicator)
	assert.False(t, entry.ReversalIndicator)
	assert.Equal(t, "ICDT", entry.BankTransactionCode.Domain.Family.Code)
	assert.Equal(t, "NMSC", entry.BankTransactionCode.Proprietary.Code)

	details := entry.FirstDetails()
	assert.Equal(t, "E2E-4554654", details.EndToEndID())
	assert.Equal(t, "987654321", details.CreditorAccountID())
	assert.Equal(t, "2023-04-19T14:10:00", details.AcceptanceDateTime())
	assert.Equal(t, "50.00", details.AmountDetails.TransactionAmount.Amount.Value)

	second := stmt.Entries[1].FirstDetails()
	assert.Equal(t, domain.Placeholder, second.EndToEndID())
	assert.Nil(t, second.RelatedParties)
	assert.Nil(t, second.RelatedDates)
	assert.Nil(t, stmt.TransactionSummary)
}

func TestSerializeRoundTrip(t *testing.T) {
	doc := parseFixture(t)

	var buf bytes.Buffer
	require.NoError(t, camt053.NewCodec().Serialize(doc, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">`)
	assert.Contains(t, out, "\n  <BkToCstmrStmt>")
	assert.Contains(t, out, `<Amt Ccy="DKK">1200.50</Amt>`)
	assert.NotContains(t, out, "<RvslInd>")

	again, err := camt053.NewCodec().Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.BkToCstmrStmt, again.BkToCstmrStmt)
}

func TestSerializeDefaults(t *testing.T) {
	doc := &domain.StatementDocument{}
	doc.Statement().ID = "S1"
	doc.Statement().Entries = []domain.Entry{{Reference: "1", ReversalIndicator: true}}
	doc.Statement().TransactionSummary = &domain.TransactionSummary{
		TotalEntries: domain.TotalEntries{NumberOfEntries: "1", TotalNetEntryAmount: "0.00", Indicator: domain.Credit},
	}

	var buf bytes.Buffer
	require.NoError(t, camt053.NewCodec().Serialize(doc, &buf))

	out := buf.String()
	assert.Contains(t, out, `xmlns="`+domain.CAMT053Namespace+`"`)
	assert.Contains(t, out, "<RvslInd>true</RvslInd>")
	assert.Contains(t, out, "<TtlNetNtryAmt>0.00</TtlNetNtryAmt>")
	assert.Empty(t, doc.Namespace, "input document is left untouched")
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"not xml":         ":20:123456789",
		"wrong root":      "<Statement></Statement>",
		"truncated":       "<Document><BkToCstmrStmt><GrpHdr>",
		"bad sequence nb": "<Document><BkToCstmrStmt><Stmt><ElctrncSeqNb>one</ElctrncSeqNb></Stmt></BkToCstmrStmt></Document>",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := camt053.NewCodec().Parse(strings.NewReader(input))
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
		})
	}
}
