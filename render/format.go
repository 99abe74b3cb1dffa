package render

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with Indian digit grouping and a fixed
// number of decimal places: 1234567.8 with two places is "12,34,567.80".
func FormatMoney(d decimal.Decimal, places int) string {
	if places < 0 {
		places = 2
	}
	s := d.StringFixed(int32(places))

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	grouped := groupIndian(intPart)
	if neg {
		grouped = "-" + grouped
	}
	if hasFrac {
		return grouped + "." + fracPart
	}
	return grouped
}

// groupIndian inserts commas after the last three digits and then every
// two digits: "1234567" -> "12,34,567".
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// dateLayouts maps the configurable display preference to a Go layout.
var dateLayouts = map[string]string{
	"DD/MM/YYYY": "02/01/2006",
	"MM/DD/YYYY": "01/02/2006",
	"YYYY-MM-DD": "2006-01-02",
}

// FormatDate renders a stored ISO date (YYYY-MM-DD) in the configured
// display format. Unparseable or empty input renders as-is, keeping
// partially-filled drafts previewable.
func FormatDate(iso string, format string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	layout, ok := dateLayouts[format]
	if !ok {
		layout = dateLayouts["DD/MM/YYYY"]
	}
	return t.Format(layout)
}
