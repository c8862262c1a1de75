package rendering

import (
	"strings"
	"time"
)

const (
	// PresentLabel replaces the end date of an ongoing entry.
	PresentLabel = "Present"
	// rangeSeparator sits between the two ends of a date range.
	rangeSeparator = " — "
)

// FormatDate turns "YYYY-MM" into an abbreviated month and year ("2021-01" -> "Jan 2021").
// Empty input yields "". Anything that does not start with a valid year and month is
// returned unchanged rather than as an error marker.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) >= 7 {
		if t, err := time.Parse("2006-01", value[:7]); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return value
}

// FormatRange joins the formatted start and end with rangeSeparator. When ongoing is set the end is the
// Present label. A missing side is dropped along with the separator.
func FormatRange(start, end string, ongoing bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if ongoing {
		to = PresentLabel
	}

	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + rangeSeparator + to
	}
}
