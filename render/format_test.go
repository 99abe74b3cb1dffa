package render

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in     string
		places int
		want   string
	}{
		{"0", 2, "0.00"},
		{"123", 2, "123.00"},
		{"1234", 2, "1,234.00"},
		{"12345", 2, "12,345.00"},
		{"123456", 2, "1,23,456.00"},
		{"1234567.8", 2, "12,34,567.80"},
		{"12345678", 2, "1,23,45,678.00"},
		{"-1234.5", 2, "-1,234.50"},
		{"99.999", 2, "100.00"},
		{"500", 0, "500"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatMoney(d, tt.places); got != tt.want {
			t.Errorf("FormatMoney(%s, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		iso    string
		format string
		want   string
	}{
		{"2026-08-30", "DD/MM/YYYY", "30/08/2026"},
		{"2026-08-30", "MM/DD/YYYY", "08/30/2026"},
		{"2026-08-30", "YYYY-MM-DD", "2026-08-30"},
		{"2026-08-30", "", "30/08/2026"},
		{"", "DD/MM/YYYY", ""},
		{"not a date", "DD/MM/YYYY", "not a date"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.iso, tt.format); got != tt.want {
			t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.iso, tt.format, got, tt.want)
		}
	}
}
