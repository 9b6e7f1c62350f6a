package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToInt64 converts various types to int64 using explicit type switching.
// Ledger u64 values arrive as decimal strings; unparsable input yields 0
// and values past the int64 range saturate at its bounds.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case uint:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case uint32:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case json.Number:
		return ToInt64(string(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return fromUint(u)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromFloat(f)
		}
		return 0
	case []byte:
		return ToInt64(string(v))
	case nil:
		return 0
	default:
		return ToInt64(fmt.Sprintf("%v", v))
	}
}

func fromUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func fromFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// ToInt converts various types to int.
func ToInt(val any) int {
	return int(ToInt64(val))
}

// ToString converts various types to string. Nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32, uint8, float64:
		return ToInt64(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

// ToUnixTime converts a seconds-since-epoch value to a UTC time.
// Zero and unparsable values yield the zero time.
func ToUnixTime(val any) time.Time {
	secs := ToInt64(val)
	if secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

// Unwrap returns the inner value of a Move struct rendered as
// {"type": ..., "fields": {...}}, following "fields" and then "value" (or "id")
// keys. Any other value is returned unchanged.
func Unwrap(val any) any {
	for {
		m, ok := val.(map[string]any)
		if !ok {
			return val
		}
		switch {
		case m["fields"] != nil:
			val = m["fields"]
		case m["value"] != nil:
			val = m["value"]
		case m["id"] != nil:
			val = m["id"]
		default:
			return val
		}
	}
}
