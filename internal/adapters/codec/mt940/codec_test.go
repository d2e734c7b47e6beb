package mt940_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/statement_converter/internal/adapters/codec/mt940"
	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bareMessage = ":20:123456789\n:25:123456789/12345678\n:28C:00001/001\n:60F:C240930EUR12345,67\n" +
	":61:2410011001D123,45NTRFNONREF//123456789\n:86:Transfer to John Doe\n" +
	":61:2410021002C456,78NTRFNONREF//987654321\n:86:Payment from ACME Corp\n:62F:C241002EUR12679,00\n"

func TestParse_BareText(t *testing.T) {
	msg, err := mt940.NewCodec().Parse(strings.NewReader(bareMessage))
	require.NoError(t, err)

	assert.Equal(t, "123456789", msg.Reference)
	assert.Equal(t, "123456789/12345678", msg.AccountID)
	assert.Equal(t, uint32(1), msg.StatementNumber)
	require.NotNil(t, msg.SequenceNumber)
	assert.Equal(t, uint32(1), *msg.SequenceNumber)

	assert.Equal(t, domain.MarkCredit, msg.OpeningBalance.Mark)
	assert.Equal(t, "EUR", msg.OpeningBalance.Currency)
	assert.Equal(t, "12345.67", msg.OpeningBalance.Amount.String())
	assert.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), msg.OpeningBalance.ValueDate)
	assert.Equal(t, "12679", msg.ClosingBalance.Amount.String())
	assert.Nil(t, msg.ClosingAvailableBalance)

	require.Len(t, msg.StatementLines, 2)
	first := msg.StatementLines[0]
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), first.Transaction.ValueDate)
	assert.Equal(t, "1001", first.Transaction.EntryDate)
	assert.Equal(t, domain.MarkDebit, first.Transaction.Mark)
	assert.Equal(t, "123.45", first.Transaction.Amount.String())
	assert.Equal(t, "NTRF", first.Transaction.TransactionType)
	assert.Equal(t, "NONREF", first.Transaction.CustomerReference)
	assert.Equal(t, "123456789", first.Transaction.BankReference)
	assert.Equal(t, []string{"Transfer to John Doe"}, first.Narrative)

	assert.Equal(t, domain.MarkCredit, msg.StatementLines[1].Transaction.Mark)
	assert.Equal(t, []string{"Payment from ACME Corp"}, msg.StatementLines[1].Narrative)
}

func TestParse_Envelope(t *testing.T) {
	f, err := os.Open("testdata/statement.sta")
	require.NoError(t, err)
	defer f.Close()

	msg, err := mt940.NewCodec().Parse(f)
	require.NoError(t, err)

	require.Len(t, msg.StatementLines, 2)
	second := msg.StatementLines[1]
	assert.Equal(t, "SEPA CREDIT", second.Transaction.SupplementaryDetails)
	assert.Equal(t, []string{"Payment from ACME Corp", "EndToEndId: ACME-42"}, second.Narrative)

	require.NotNil(t, msg.ClosingAvailableBalance)
	assert.Equal(t, "12600", msg.ClosingAvailableBalance.Amount.String())
}

func TestParse_StatementLineVariants(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		entryDate string
		mark      domain.DebitCreditMark
		amount    string
		txType    string
		customer  string
		bank      string
	}{
		{name: "no entry date", line: "241001C10,00NMSCREF1", mark: domain.MarkCredit, amount: "10", txType: "NMSC", customer: "REF1"},
		{name: "reversal credit", line: "2410011001RC5,5NTRFA//B", entryDate: "1001", mark: domain.MarkReversalCredit, amount: "5.5", txType: "NTRF", customer: "A", bank: "B"},
		{name: "reversal debit", line: "241001RD1,NCHK", mark: domain.MarkReversalDebit, amount: "1", txType: "NCHK"},
		{name: "funds code", line: "241001DR99,99DEBTINV-7//X/Y", mark: domain.MarkDebit, amount: "99.99", txType: "DEBT", customer: "INV-7", bank: "X/Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ":20:R\n:25:A\n:60F:C241001EUR0,\n:61:" + tt.line + "\n:62F:C241001EUR0,\n"
			msg, err := mt940.NewCodec().Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, msg.StatementLines, 1)

			tx := msg.StatementLines[0].Transaction
			assert.Equal(t, tt.entryDate, tx.EntryDate)
			assert.Equal(t, tt.mark, tx.Mark)
			assert.Equal(t, tt.amount, tx.Amount.String())
			assert.Equal(t, tt.txType, tx.TransactionType)
			assert.Equal(t, tt.customer, tx.CustomerReference)
			assert.Equal(t, tt.bank, tx.BankReference)
			assert.Nil(t, msg.StatementLines[0].Narrative)
			assert.Nil(t, msg.SequenceNumber)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: apperrors.ErrMalformedInput},
		{name: "xml", input: "<Document/>", wantErr: apperrors.ErrMalformedInput},
		{name: "missing reference", input: ":25:A\n:60F:C241001EUR0,\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMissingField},
		{name: "missing account", input: ":20:R\n:60F:C241001EUR0,\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMissingField},
		{name: "missing opening", input: ":20:R\n:25:A\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMissingField},
		{name: "missing closing", input: ":20:R\n:25:A\n:60F:C241001EUR0,\n", wantErr: apperrors.ErrMissingField},
		{name: "bad balance", input: ":20:R\n:25:A\n:60F:X241001EUR0,\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMalformedInput},
		{name: "bad balance date", input: ":20:R\n:25:A\n:60F:C241301EUR0,\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrParseDate},
		{name: "two decimal commas", input: ":20:R\n:25:A\n:60F:C241001EUR1,0,0\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrInvalidAmount},
		{name: "bad statement line", input: ":20:R\n:25:A\n:60F:C241001EUR0,\n:61:garbage\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMalformedInput},
		{name: "bad statement number", input: ":20:R\n:25:A\n:28C:x/1\n:60F:C241001EUR0,\n:62F:C241001EUR0,\n", wantErr: apperrors.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := mt940.NewCodec().Parse(strings.NewReader(tt.input))
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSerialize(t *testing.T) {
	msg, err := mt940.NewCodec().Parse(strings.NewReader(bareMessage))
	require.NoError(t, err)
	msg.StatementLines[1].Transaction.CustomerReference = ""
	msg.StatementLines[1].Transaction.SupplementaryDetails = "SEPA CREDIT"
	msg.StatementLines[1].Narrative = append(msg.StatementLines[1].Narrative, "Status: BOOK")

	var buf bytes.Buffer
	require.NoError(t, mt940.NewCodec().Serialize(msg, &buf))

	want := "{4:\r\n" +
		":20:123456789\r\n" +
		":25:123456789/12345678\r\n" +
		":28C:00001/001\r\n" +
		":60F:C240930EUR12345,67\r\n" +
		":61:2410011001D123,45NTRFNONREF//123456789\r\n" +
		":86:Transfer to John Doe\r\n" +
		":61:2410021002C456,78NTRFNONREF//987654321\r\n" +
		"SEPA CREDIT\r\n" +
		":86:Payment from ACME Corp\r\nStatus: BOOK\r\n" +
		":62F:C241002EUR12679,00\r\n" +
		"-}\r\n"
	assert.Equal(t, want, buf.String())
}

func TestSerializeParseRoundTrip(t *testing.T) {
	f, err := os.Open("testdata/statement.sta")
	require.NoError(t, err)
	defer f.Close()

	codec := mt940.NewCodec()
	msg, err := codec.Parse(f)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Serialize(msg, &buf))
	again, err := codec.Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, msg.Reference, again.Reference)
	require.Len(t, again.StatementLines, len(msg.StatementLines))
	for i := range msg.StatementLines {
		assert.Equal(t, msg.StatementLines[i].Narrative, again.StatementLines[i].Narrative)
		assert.True(t, msg.StatementLines[i].Transaction.Amount.Equal(again.StatementLines[i].Transaction.Amount))
		assert.Equal(t, msg.StatementLines[i].Transaction.SupplementaryDetails, again.StatementLines[i].Transaction.SupplementaryDetails)
	}
	assert.True(t, msg.ClosingAvailableBalance.Amount.Equal(again.ClosingAvailableBalance.Amount))
}

func TestSerialize_Errors(t *testing.T) {
	valid := func() *domain.StatementMessage {
		msg, err := mt940.NewCodec().Parse(strings.NewReader(bareMessage))
		require.NoError(t, err)
		return msg
	}

	tests := []struct {
		name    string
		mutate  func(msg *domain.StatementMessage)
		wantErr error
	}{
		{name: "no reference", mutate: func(m *domain.StatementMessage) { m.Reference = "" }, wantErr: apperrors.ErrMissingField},
		{name: "no account", mutate: func(m *domain.StatementMessage) { m.AccountID = "" }, wantErr: apperrors.ErrMissingField},
		{name: "bad balance mark", mutate: func(m *domain.StatementMessage) { m.OpeningBalance.Mark = "RC" }, wantErr: apperrors.ErrInvalidIndicator},
		{name: "bad line mark", mutate: func(m *domain.StatementMessage) { m.StatementLines[0].Transaction.Mark = "X" }, wantErr: apperrors.ErrInvalidIndicator},
		{name: "bad transaction type", mutate: func(m *domain.StatementMessage) { m.StatementLines[0].Transaction.TransactionType = "TRF" }, wantErr: apperrors.ErrConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(msg)
			var buf bytes.Buffer
			assert.ErrorIs(t, mt940.NewCodec().Serialize(msg, &buf), tt.wantErr)
			assert.Zero(t, buf.Len())
		})
	}
}
