// Package pagination encodes the opaque next_token cursors used by keyset-paginated lists.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidToken is returned for tokens that were not produced by this package.
var ErrInvalidToken = errors.New("invalid pagination token")

const (
	entryPrefix = "e1"
	datePrefix  = "d1"
	sep         = "|"
)

// EntryCursor is the position after the last journal entry of a page. Entries are
// ordered by (EntryDate, CreatedAt) descending.
type EntryCursor struct {
	EntryDate time.Time
	CreatedAt time.Time
}

func encode(parts ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, sep)))
}

func decode(token, prefix string, n int) ([]string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64", ErrInvalidToken)
	}
	parts := strings.Split(string(raw), sep)
	if len(parts) != n+1 || parts[0] != prefix {
		return nil, fmt.Errorf("%w: unexpected layout", ErrInvalidToken)
	}
	return parts[1:], nil
}

// EncodeEntryCursor returns the next_token for c.
func EncodeEntryCursor(c EntryCursor) string {
	return encode(entryPrefix, c.EntryDate.Format(time.DateOnly), c.CreatedAt.UTC().Format(time.RFC3339Nano))
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (EntryCursor, error) {
	parts, err := decode(token, entryPrefix, 2)
	if err != nil {
		return EntryCursor{}, err
	}
	entryDate, err := time.Parse(time.DateOnly, parts[0])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("%w: entry date", ErrInvalidToken)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, parts[1])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("%w: created_at", ErrInvalidToken)
	}
	return EntryCursor{EntryDate: entryDate, CreatedAt: createdAt}, nil
}

// EncodeDateCursor returns the next_token for lists keyed by a calendar day, such as
// indicator history.
func EncodeDateCursor(day time.Time) string {
	return encode(datePrefix, day.Format(time.DateOnly))
}

// DecodeDateCursor parses a token produced by EncodeDateCursor. The day is returned in UTC.
func DecodeDateCursor(token string) (time.Time, error) {
	parts, err := decode(token, datePrefix, 1)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.Parse(time.DateOnly, parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date", ErrInvalidToken)
	}
	return day, nil
}
