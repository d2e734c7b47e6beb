package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "0b7c6f0e-2f4a-4d7e-9d0e-6a4a8f1c2b3d"

	token := EncodeToken(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at time should match after decode")
	assert.Equal(t, id, decodedID)

	// Non-UTC times are normalised before encoding
	local := time.Date(2023, 5, 15, 16, 30, 45, 0, time.FixedZone("CEST", 2*3600))
	decodedAt, _, err = DecodeToken(EncodeToken(local, id))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{name: "invalid base64", token: "this is not base64!", message: "base64 decode"},
		{name: "missing separator", token: encode("2023-05-15T00:00:00Z"), message: "split"},
		{name: "missing id", token: encode("2023-05-15T00:00:00Z|"), message: "split"},
		{name: "invalid date", token: encode("notadate|abc"), message: "created_at parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
