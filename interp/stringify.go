package interp

import "strconv"

// Stringify renders a Value for `print` and REPL auto-print output,
// per spec.md §4.4: integral-valued floats print without a trailing
// ".0", nil prints as "nil", and everything else uses its natural
// textual form.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		return text
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return "nil"
	}
}
