// Package csvcodec reads and writes flat CSV transaction lists with the columns
// date, amount, currency, description and reference.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/core/ports"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
	"github.com/go-playground/validator/v10"
)

const (
	colDate        = "date"
	colAmount      = "amount"
	colCurrency    = "currency"
	colDescription = "description"
	colReference   = "reference"
)

// Header is the column order written by Serialize.
var Header = []string{colDate, colAmount, colCurrency, colDescription, colReference}

// Codec is the CSV transaction codec.
type Codec struct {
	validate *validator.Validate
}

// NewCodec creates a CSV codec.
func NewCodec() *Codec {
	return &Codec{validate: validator.New(validator.WithRequiredStructEnabled())}
}

var _ ports.TransactionSetCodec = (*Codec)(nil)

// Parse reads a header row followed by transaction rows. Columns are matched by
// header name, case-insensitively, in any order.
func (c *Codec) Parse(r io.Reader) (*domain.TransactionSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty CSV input", apperrors.ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: read CSV header: %v", apperrors.ErrMalformedInput, err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	set := &domain.TransactionSet{Rows: []domain.TransactionRow{}}
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read CSV row %d: %v", apperrors.ErrMalformedInput, rowNum, err)
		}

		row, err := c.decodeRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range Header {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: CSV header lacks column %q", apperrors.ErrMissingField, col)
		}
	}
	return index, nil
}

func (c *Codec) decodeRow(record []string, index map[string]int) (domain.TransactionRow, error) {
	get := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	date, err := normalize.ParseDate(get(colDate))
	if err != nil {
		return domain.TransactionRow{}, err
	}
	amount, err := normalize.ParseAmount(get(colAmount))
	if err != nil {
		return domain.TransactionRow{}, err
	}

	row := domain.TransactionRow{
		Date:        date,
		Amount:      amount,
		Currency:    get(colCurrency),
		Description: get(colDescription),
		Reference:   get(colReference),
	}
	if err := c.validateRow(row); err != nil {
		return domain.TransactionRow{}, err
	}
	return row, nil
}

func (c *Codec) validateRow(row domain.TransactionRow) error {
	if err := c.validate.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s failed %q", apperrors.ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// Serialize writes the header and one row per transaction. Amounts carry two
// fraction digits and dates are written as YYYY-MM-DD.
func (c *Codec) Serialize(set *domain.TransactionSet, w io.Writer) error {
	if set == nil {
		return fmt.Errorf("%w: nil transaction set", apperrors.ErrConversion)
	}
	for i, row := range set.Rows {
		if err := c.validateRow(row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("%w: write CSV: %v", apperrors.ErrMalformedInput, err)
	}
	for _, row := range set.Rows {
		record := []string{
			normalize.FormatDate(row.Date),
			normalize.FormatAmount(row.Amount),
			row.Currency,
			row.Description,
			row.Reference,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: write CSV: %v", apperrors.ErrMalformedInput, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: write CSV: %v", apperrors.ErrMalformedInput, err)
	}
	return nil
}
