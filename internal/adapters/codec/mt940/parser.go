package mt940

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	"github.com/SscSPs/statement_converter/internal/utils/normalize"
	"github.com/shopspring/decimal"
)

var (
	fieldPattern     = regexp.MustCompile(`^:(\d{2}[A-Z]?):(.*)$`)
	balancePattern   = regexp.MustCompile(`^([CD])(\d{6})([A-Z]{3})(\d[\d,]*)$`)
	statementPattern = regexp.MustCompile(`^(\d{6})(\d{4})?(RC|RD|C|D)([A-Z])?(\d[\d,]*)([A-Z][A-Z0-9]{3})(.*?)(?://(.*))?$`)
)

// field is one tagged field of block 4 with its continuation lines.
type field struct {
	tag   string
	lines []string
}

func (f field) first() string {
	if len(f.lines) == 0 {
		return ""
	}
	return f.lines[0]
}

// Parse reads one MT940 message from r.
func (c *Codec) Parse(r io.Reader) (*domain.StatementMessage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read MT940: %v", apperrors.ErrMalformedInput, err)
	}

	fields, err := splitFields(textBlock(string(raw)))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no MT940 fields found", apperrors.ErrMalformedInput)
	}

	var (
		msg                      domain.StatementMessage
		seenOpening, seenClosing bool
		current                  *domain.StatementLine
	)
	for _, f := range fields {
		switch f.tag {
		case tagReference:
			msg.Reference = strings.TrimSpace(f.first())
		case tagRelatedReference:
			msg.RelatedReference = strings.TrimSpace(f.first())
		case tagAccount:
			msg.AccountID = strings.TrimSpace(f.first())
		case tagStatementNumber:
			if err := parseStatementNumber(f.first(), &msg); err != nil {
				return nil, err
			}
		case tagOpeningFinal, tagOpeningInterim:
			// first opening balance of a multi-part message wins
			if seenOpening {
				continue
			}
			b, err := parseBalance(f.first())
			if err != nil {
				return nil, fmt.Errorf(":%s: %w", f.tag, err)
			}
			msg.OpeningBalance, seenOpening = b, true
		case tagStatementLine:
			line, err := parseStatementLine(f)
			if err != nil {
				return nil, fmt.Errorf(":61: line %d: %w", len(msg.StatementLines)+1, err)
			}
			msg.StatementLines = append(msg.StatementLines, line)
			current = &msg.StatementLines[len(msg.StatementLines)-1]
		case tagNarrative:
			// statement level information before the first :61: has no line to attach to
			if current != nil {
				current.Narrative = append(current.Narrative, f.lines...)
			}
		case tagClosingFinal, tagClosingInterim:
			// last closing balance wins
			b, err := parseBalance(f.first())
			if err != nil {
				return nil, fmt.Errorf(":%s: %w", f.tag, err)
			}
			msg.ClosingBalance, seenClosing = b, true
			current = nil
		case tagClosingAvailable:
			b, err := parseBalance(f.first())
			if err != nil {
				return nil, fmt.Errorf(":64: %w", err)
			}
			msg.ClosingAvailableBalance = &b
			current = nil
		default:
			current = nil
		}
	}

	switch {
	case msg.Reference == "":
		return nil, fmt.Errorf("%w: field :20: (transaction reference)", apperrors.ErrMissingField)
	case msg.AccountID == "":
		return nil, fmt.Errorf("%w: field :25: (account identification)", apperrors.ErrMissingField)
	case !seenOpening:
		return nil, fmt.Errorf("%w: field :60F: (opening balance)", apperrors.ErrMissingField)
	case !seenClosing:
		return nil, fmt.Errorf("%w: field :62F: (closing balance)", apperrors.ErrMissingField)
	}
	return &msg, nil
}

// textBlock strips the {1:}{2:}{3:} headers and the "-}" trailer around block 4.
func textBlock(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	if idx := strings.Index(text, "{4:"); idx >= 0 {
		text = text[idx+len("{4:"):]
		if end := strings.LastIndex(text, "-}"); end >= 0 {
			text = text[:end]
		}
	}
	return text
}

func splitFields(text string) ([]field, error) {
	var fields []field
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			fields = append(fields, field{tag: m[1], lines: []string{m[2]}})
			continue
		}
		if line == "" || line == "-" {
			continue
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: unexpected text before first MT940 field: %q", apperrors.ErrMalformedInput, line)
		}
		last := &fields[len(fields)-1]
		last.lines = append(last.lines, line)
	}
	return fields, nil
}

// parseStatementNumber reads "statement[/sequence]".
func parseStatementNumber(value string, msg *domain.StatementMessage) error {
	number, sequence, hasSequence := strings.Cut(strings.TrimSpace(value), "/")
	n, err := strconv.ParseUint(number, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: :28C: statement number %q", apperrors.ErrMalformedInput, number)
	}
	msg.StatementNumber = uint32(n)
	if hasSequence {
		s, err := strconv.ParseUint(sequence, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: :28C: sequence number %q", apperrors.ErrMalformedInput, sequence)
		}
		seq := uint32(s)
		msg.SequenceNumber = &seq
	}
	return nil
}

// parseBalance reads "<C|D><YYMMDD><CCY><amount>", e.g. "C240930EUR12345,67".
func parseBalance(value string) (domain.MessageBalance, error) {
	m := balancePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return domain.MessageBalance{}, fmt.Errorf("%w: malformed balance %q", apperrors.ErrMalformedInput, value)
	}
	date, err := parseSwiftDate(m[2])
	if err != nil {
		return domain.MessageBalance{}, err
	}
	amount, err := parseSwiftAmount(m[4])
	if err != nil {
		return domain.MessageBalance{}, err
	}
	return domain.MessageBalance{
		ValueDate: date,
		Mark:      domain.DebitCreditMark(m[1]),
		Currency:  m[3],
		Amount:    amount,
	}, nil
}

// parseStatementLine reads a :61: field. The optional second line carries the
// supplementary details.
func parseStatementLine(f field) (domain.StatementLine, error) {
	m := statementPattern.FindStringSubmatch(strings.TrimSpace(f.first()))
	if m == nil {
		return domain.StatementLine{}, fmt.Errorf("%w: malformed statement line %q", apperrors.ErrMalformedInput, f.first())
	}
	valueDate, err := parseSwiftDate(m[1])
	if err != nil {
		return domain.StatementLine{}, err
	}
	amount, err := parseSwiftAmount(m[5])
	if err != nil {
		return domain.StatementLine{}, err
	}

	tx := domain.TransactionRecord{
		ValueDate:         valueDate,
		EntryDate:         m[2],
		Mark:              domain.DebitCreditMark(m[3]),
		Amount:            amount,
		TransactionType:   m[6],
		CustomerReference: m[7],
		BankReference:     m[8],
	}
	if len(f.lines) > 1 {
		tx.SupplementaryDetails = strings.Join(f.lines[1:], " ")
	}
	return domain.StatementLine{Transaction: tx}, nil
}

func parseSwiftDate(value string) (time.Time, error) {
	t, err := time.Parse(swiftDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid SWIFT date %q", apperrors.ErrParseDate, value)
	}
	return t, nil
}

// parseSwiftAmount reads a decimal-comma amount such as "123,45" or "100,".
func parseSwiftAmount(value string) (decimal.Decimal, error) {
	if strings.Count(value, ",") != 1 {
		return decimal.Zero, fmt.Errorf("%w: SWIFT amount needs exactly one decimal comma: %q", apperrors.ErrInvalidAmount, value)
	}
	literal := strings.Replace(value, ",", ".", 1)
	if strings.HasSuffix(literal, ".") {
		literal += "0"
	}
	return normalize.ParseAmount(literal)
}
