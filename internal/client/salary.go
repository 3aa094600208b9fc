package client

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSalary renders the digits of a free-form salary as rupees with
// western thousands separators and no decimals, so "12,00,000 INR/yr" becomes
// "₹1,200,000". This differs from en-IN currency formatting, which would give
// "₹12,00,000.00". It returns "" when the text holds no digits.
func FormatSalary(salary string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, salary)
	if digits == "" {
		return ""
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return ""
	}
	return "₹" + humanize.BigComma(n)
}
