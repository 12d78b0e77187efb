package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseEntryValue checks a raw JSON value against the item's storage type.
// boolean takes a bool, count takes a non-negative integer or numeric string,
// and text takes a string.
func ParseEntryValue(st StorageType, raw any) (EntryValue, error) {
	switch st {
	case StorageTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return EntryValue{}, NewValidationError("value", "must be a boolean")
		}
		return EntryValue{Kind: st, Bool: b}, nil

	case StorageTypeCount:
		n, ok := parseCount(raw)
		if !ok {
			return EntryValue{}, NewValidationError("value", "must be an integer")
		}
		if n < 0 {
			return EntryValue{}, NewValidationError("value", "must be at least 0")
		}
		return EntryValue{Kind: st, Count: n}, nil

	case StorageTypeText:
		s, ok := raw.(string)
		if !ok {
			return EntryValue{}, NewValidationError("value", "must be a string")
		}
		return EntryValue{Kind: st, Text: s}, nil
	}

	return EntryValue{}, ErrInvalidStorageType
}

func parseCount(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
