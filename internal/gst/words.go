package gst

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// twoDigits renders 0-99.
func twoDigits(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

// threeDigits renders 0-999.
func threeDigits(n int) string {
	if n < 100 {
		return twoDigits(n)
	}
	s := ones[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + twoDigits(n%100)
	}
	return s
}

// numberToWords renders a positive integer using the Indian numbering
// convention: groups of hundred, thousand, lakh and crore (not million).
// Crore groups recurse so arbitrarily large amounts read naturally
// ("One Crore Crore" does not occur; "One Lakh Crore" does).
func numberToWords(n int64) string {
	if n == 0 {
		return ""
	}
	var parts []string
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, numberToWords(crore)+" Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, twoDigits(int(lakh))+" Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, twoDigits(int(thousand))+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, threeDigits(int(n)))
	}
	return strings.Join(parts, " ")
}

// AmountInWords renders a rupee amount in words, terminated with "Only".
// Paise are rendered when present. Zero is special-cased rather than being
// a recursive base case that would format awkwardly.
func AmountInWords(amount float64) string {
	amount = Round2(math.Abs(amount))
	rupees := int64(amount)
	paise := int64(math.Round((amount - float64(rupees)) * 100))

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	var b strings.Builder
	if rupees > 0 {
		b.WriteString(numberToWords(rupees))
		if rupees == 1 {
			b.WriteString(" Rupee")
		} else {
			b.WriteString(" Rupees")
		}
	}
	if paise > 0 {
		if rupees > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(twoDigits(int(paise)))
		if paise == 1 {
			b.WriteString(" Paisa")
		} else {
			b.WriteString(" Paise")
		}
	}
	b.WriteString(" Only")
	return b.String()
}
