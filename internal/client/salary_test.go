package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	cases := map[string]string{
		"₹12,00,000":          "₹1,200,000",
		"850000 INR per year": "₹850,000",
		"500":                 "₹500",
		"Competitive":         "",
		"":                    "",
		"12345678901234567890123": "₹12,345,678,901,234,567,890,123",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatSalary(in), in)
	}
}
