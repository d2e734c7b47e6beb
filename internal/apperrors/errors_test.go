package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped missing field", err: fmt.Errorf("%w: IBAN", apperrors.ErrMissingField), want: "MissingField"},
		{name: "double wrapped date", err: fmt.Errorf("entry 1: %w", fmt.Errorf("%w: x", apperrors.ErrParseDate)), want: "ParseDateError"},
		{name: "indicator", err: apperrors.ErrInvalidIndicator, want: "InvalidIndicator"},
		{name: "unsupported", err: fmt.Errorf("%w: a -> b", apperrors.ErrUnsupportedFormat), want: "UnsupportedFormat"},
		{name: "unknown", err: errors.New("boom"), want: "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.Kind(tt.err))
		})
	}
}
