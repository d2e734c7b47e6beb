package apperrors

import "errors"

// ErrParseDate indicates a date literal matched none of the accepted layouts.
var ErrParseDate = errors.New("date parsing error")

// ErrInvalidAmount indicates a decimal amount literal could not be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidIndicator indicates a credit/debit indicator or mark outside its vocabulary.
var ErrInvalidIndicator = errors.New("invalid indicator")

// ErrMissingField indicates a field required by the target format is absent in the source.
var ErrMissingField = errors.New("missing field")

// ErrConversion is the catch-all for structural mismatches between the two models.
var ErrConversion = errors.New("conversion error")

// ErrMalformedInput indicates the raw input could not be read or decoded by a codec.
var ErrMalformedInput = errors.New("malformed input")

// ErrUnsupportedFormat indicates an unknown format token or an unsupported format combination.
var ErrUnsupportedFormat = errors.New("unsupported format combination")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

var kinds = []struct {
	err  error
	name string
}{
	{ErrParseDate, "ParseDateError"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInvalidIndicator, "InvalidIndicator"},
	{ErrMissingField, "MissingField"},
	{ErrConversion, "ConversionError"},
	{ErrMalformedInput, "MalformedInput"},
	{ErrUnsupportedFormat, "UnsupportedFormat"},
	{ErrNotFound, "NotFound"},
	{ErrValidation, "ValidationError"},
}

// Kind returns the error kind name for err, or "Internal" when err wraps none of the
// sentinel errors above. A nil error has an empty kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
