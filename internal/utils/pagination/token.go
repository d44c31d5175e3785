package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeSequenceToken creates a base64 encoded token from an append-order
// sequence number. Used for consistent pagination over sequenced records
// (journal entries, sales).
func EncodeSequenceToken(sequence int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(sequence, 10)))
}

// DecodeSequenceToken parses a base64 encoded token back into a sequence number.
func DecodeSequenceToken(token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	sequence, err := strconv.ParseInt(string(decodedBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (sequence parse): %w", err)
	}
	return sequence, nil
}

// EncodeDateToken creates a token for single date field pagination.
func EncodeDateToken(date time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat)))
}

// DecodeDateToken decodes a token for single date field pagination.
func DecodeDateToken(token string) (time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	date, err := time.Parse(timeFormat, string(decodedBytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, nil
}
