package types

import (
	"strconv"
	"time"

	ierr "github.com/nimblepay/nimblepay-go/errors"
)

// Date layouts accepted by UnixSeconds, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnixSeconds coerces a date-like value into the epoch-seconds representation
// the API expects. The accepted set is closed: time.Time (and *time.Time),
// integer or float epoch seconds, a decimal-digit epoch string, or a date
// string in one of the supported layouts. Anything else is rejected with a
// validation error rather than silently coerced.
func UnixSeconds(v any) (int64, error) {
	switch t := v.(type) {
	case time.Time:
		return t.Unix(), nil
	case *time.Time:
		if t == nil {
			return 0, invalidDateErr(v)
		}
		return t.Unix(), nil
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case string:
		if epoch, err := strconv.ParseInt(t, 10, 64); err == nil {
			return epoch, nil
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Unix(), nil
			}
		}
		return 0, invalidDateErr(v)
	default:
		return 0, invalidDateErr(v)
	}
}

func invalidDateErr(v any) error {
	return ierr.NewError("invalid date value").
		WithHint("Provide a time.Time, epoch seconds or a parseable date string").
		WithReportableDetails(map[string]any{
			"value": v,
		}).
		Mark(ierr.ErrValidation)
}
