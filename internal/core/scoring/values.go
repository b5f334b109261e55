package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// numericTolerance is the absolute difference under which two numeric
// field values count as equal.
const numericTolerance = 0.01

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func normalizeString(v any) string {
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// valuesMatch compares an expected field value against an observed one.
// A nil expectation requires a nil actual; a numeric expectation requires a
// numeric actual within numericTolerance; everything else compares as
// trimmed, case-folded strings.
func valuesMatch(expected, actual any) bool {
	if expected == nil {
		return actual == nil
	}
	if ef, ok := asFloat(expected); ok {
		af, aok := asFloat(actual)
		return aok && math.Abs(ef-af) <= numericTolerance
	}
	return normalizeString(expected) == normalizeString(actual)
}

// parseDate accepts ISO calendar dates (2006-01-02) carried as strings.
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
