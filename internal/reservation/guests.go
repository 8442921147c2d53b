package reservation

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumGuests приводит нетипизированное значение (например, поле из
// JSON или protobuf Struct) к количеству гостей.
//
// Допускаются целые числа, float без дробной части и строки с числом.
// Всё остальное, включая bool и nil, а также значения < 1,
// даёт ErrInvalidGuestCount.
func ParseNumGuests(v any) (int, error) {
	var f float64
	switch x := v.(type) {
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, ErrInvalidGuestCount
		}
		f = parsed
	default:
		return 0, ErrInvalidGuestCount
	}

	if math.IsNaN(f) || f < 1 || f >= math.MaxInt || f != math.Trunc(f) {
		return 0, ErrInvalidGuestCount
	}
	return int(f), nil
}
