package render

import (
	"fmt"
	"strconv"
)

// DefaultPrecision is the number of decimals used for floats unless a
// caller asks otherwise.
const DefaultPrecision = 2

// formatValue renders a cell value as text. Floats use precision decimals.
func formatValue(v any, precision int) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', precision, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', precision, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int64, float32, float64:
		return true
	}
	return false
}
