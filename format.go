package langtour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// None is the debug rendering of an absent optional value.
const None = "None"

// Debug renders a value the way the lessons print inspected values:
// strings are quoted and whole floats keep a trailing ".0".
func Debug(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		return debugFloat(x, 64)
	case float32:
		return debugFloat(float64(x), 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// List renders a slice as "[a, b, c]".
func List[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Debug(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tuple renders values as "(a, b, c)".
func Tuple(vs ...any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Debug(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Option renders a comma-ok pair as "Some(v)" or "None".
func Option[T any](v T, ok bool) string {
	if !ok {
		return None
	}
	return "Some(" + Debug(v) + ")"
}

// debugFloat never uses exponent form for whole numbers, however large.
func debugFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	format := byte('g')
	if math.Abs(f) >= 1e21 {
		format = 'f'
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
