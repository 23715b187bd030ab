package utils

import (
	"fmt"
	"strconv"
)

// Int64ToStr converts an int64 to its string representation.
func Int64ToStr(num int64) string {
	return strconv.FormatInt(num, 10)
}

// StrToInt64 converts a string to an int64.
func StrToInt64(s string) (int64, error) {
	num, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse '%s' as int64: %w", s, err)
	}
	return num, nil
}

// ParseRecordID parses a signed record id. Zero is rejected: it belongs to no store.
func ParseRecordID(s string) (int64, error) {
	id, err := StrToInt64(s)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("record id must be non-zero")
	}
	return id, nil
}

// NewNullString returns nil for an empty string so optional text columns
// stay NULL.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
