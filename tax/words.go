package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords spells out a monetary amount in the Indian numbering
// system (crore, lakh, thousand), e.g. 123456.50 becomes
// "Rupees One Lakh Twenty Three Thousand Four Hundred Fifty Six and
// Paise Fifty Only". Negative amounts are prefixed with "Minus".
func AmountInWords(amount decimal.Decimal) string {
	var parts []string
	if amount.IsNegative() {
		parts = append(parts, "Minus")
		amount = amount.Abs()
	}

	rupees := amount.Truncate(0)
	paise := amount.Sub(rupees).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	parts = append(parts, "Rupees")
	if rupees.IsZero() {
		parts = append(parts, "Zero")
	} else {
		parts = append(parts, groupWords(rupees.IntPart())...)
	}
	if paise > 0 {
		parts = append(parts, "and", "Paise")
		parts = append(parts, belowThousand(paise)...)
	}
	parts = append(parts, "Only")
	return strings.Join(parts, " ")
}

// groupWords splits n along the Indian grouping: crore, lakh, thousand,
// then the remainder below one thousand.
func groupWords(n int64) []string {
	var words []string
	if crore := n / 1e7; crore > 0 {
		words = append(words, groupWords(crore)...)
		words = append(words, "Crore")
		n %= 1e7
	}
	if lakh := n / 1e5; lakh > 0 {
		words = append(words, belowThousand(lakh)...)
		words = append(words, "Lakh")
		n %= 1e5
	}
	if thousand := n / 1000; thousand > 0 {
		words = append(words, belowThousand(thousand)...)
		words = append(words, "Thousand")
		n %= 1000
	}
	words = append(words, belowThousand(n)...)
	return words
}

func belowThousand(n int64) []string {
	var words []string
	if n >= 100 {
		words = append(words, ones[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		words = append(words, tens[n/10])
		if n%10 > 0 {
			words = append(words, ones[n%10])
		}
	case n > 0:
		words = append(words, ones[n])
	}
	return words
}
