package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryCursorRoundTrip(t *testing.T) {
	cursor := EntryCursor{
		EntryDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 4, 2, 14, 30, 45, 123456789, time.UTC),
	}

	token := EncodeEntryCursor(cursor)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	decoded, err := DecodeEntryCursor(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestEntryCursorNormalizesCreatedAtToUTC(t *testing.T) {
	santiago := time.FixedZone("CLT", -4*3600)
	created := time.Date(2024, 4, 2, 10, 0, 0, 0, santiago)

	decoded, err := DecodeEntryCursor(EncodeEntryCursor(EntryCursor{EntryDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), CreatedAt: created}))
	require.NoError(t, err)
	assert.True(t, created.Equal(decoded.CreatedAt))
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
}

func TestDecodeEntryCursorErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "***"},
		{"date cursor", EncodeDateCursor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"missing part", base64.RawURLEncoding.EncodeToString([]byte("e1|2024-01-01"))},
		{"bad date", base64.RawURLEncoding.EncodeToString([]byte("e1|2024-13-01|2024-01-01T00:00:00Z"))},
		{"bad created_at", base64.RawURLEncoding.EncodeToString([]byte("e1|2024-01-01|yesterday"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEntryCursor(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDateCursorRoundTrip(t *testing.T) {
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	decoded, err := DecodeDateCursor(EncodeDateCursor(day))
	require.NoError(t, err)
	assert.Equal(t, day, decoded)

	_, err = DecodeDateCursor(EncodeEntryCursor(EntryCursor{EntryDate: day, CreatedAt: day}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
