package csvcodec_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/statement_converter/internal/adapters/codec/csvcodec"
	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "date,amount,currency,description,reference\n" +
		"2024-10-01,-123.45,EUR,Transfer to John Doe,123456789\n" +
		"2024-10-02T09:30:00, 456.78,EUR,\"Payment from ACME Corp; Status: BOOK\",987654321\n"

	set, err := csvcodec.NewCodec().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, set.Rows, 2)

	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), set.Rows[0].Date)
	assert.True(t, decimal.RequireFromString("-123.45").Equal(set.Rows[0].Amount))
	assert.Equal(t, "EUR", set.Rows[0].Currency)
	assert.Equal(t, "Transfer to John Doe", set.Rows[0].Description)
	assert.Equal(t, "123456789", set.Rows[0].Reference)

	assert.Equal(t, time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC), set.Rows[1].Date)
	assert.Equal(t, "Payment from ACME Corp; Status: BOOK", set.Rows[1].Description)
}

func TestParse_ColumnOrder(t *testing.T) {
	input := "Reference,Currency,Date,Amount,Description\nR1,DKK,2023-04-20,50.00,\n"

	set, err := csvcodec.NewCodec().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, set.Rows, 1)
	assert.Equal(t, "R1", set.Rows[0].Reference)
	assert.Equal(t, "DKK", set.Rows[0].Currency)
	assert.Empty(t, set.Rows[0].Description)
}

func TestParse_HeaderOnly(t *testing.T) {
	set, err := csvcodec.NewCodec().Parse(strings.NewReader("date,amount,currency,description,reference\n"))
	require.NoError(t, err)
	assert.Empty(t, set.Rows)
}

func TestParse_Errors(t *testing.T) {
	header := "date,amount,currency,description,reference\n"
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: apperrors.ErrMalformedInput},
		{name: "missing column", input: "date,amount,currency\n", wantErr: apperrors.ErrMissingField},
		{name: "ragged row", input: header + "2024-10-01,1.00,EUR\n", wantErr: apperrors.ErrMalformedInput},
		{name: "bad date", input: header + "01/10/2024,1.00,EUR,,\n", wantErr: apperrors.ErrParseDate},
		{name: "bad amount", input: header + "2024-10-01,\"1,000.00\",EUR,,\n", wantErr: apperrors.ErrInvalidAmount},
		{name: "missing currency", input: header + "2024-10-01,1.00,,,\n", wantErr: apperrors.ErrValidation},
		{name: "lower case currency", input: header + "2024-10-01,1.00,eur,,\n", wantErr: apperrors.ErrValidation},
		{name: "long currency", input: header + "2024-10-01,1.00,EURO,,\n", wantErr: apperrors.ErrValidation},
		{name: "digit in currency", input: header + "2024-10-01,1.00,EU1,,\n", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := csvcodec.NewCodec().Parse(strings.NewReader(tt.input))
			assert.Nil(t, set)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSerialize(t *testing.T) {
	set := &domain.TransactionSet{Rows: []domain.TransactionRow{
		{
			Date:        time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-123.45"),
			Currency:    "EUR",
			Description: "Transfer to John Doe",
			Reference:   "123456789",
		},
		{
			Date:        time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(456),
			Currency:    "EUR",
			Description: "Payment, ACME",
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, csvcodec.NewCodec().Serialize(set, &buf))
	assert.Equal(t, "date,amount,currency,description,reference\n"+
		"2024-10-01,-123.45,EUR,Transfer to John Doe,123456789\n"+
		"2024-10-02,456.00,EUR,\"Payment, ACME\",\n", buf.String())

	again, err := csvcodec.NewCodec().Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Payment, ACME", again.Rows[1].Description)
}

func TestSerialize_InvalidRow(t *testing.T) {
	set := &domain.TransactionSet{Rows: []domain.TransactionRow{{Currency: "EUR"}}}

	var buf bytes.Buffer
	err := csvcodec.NewCodec().Serialize(set, &buf)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, buf.Len())
}
