package utils

import "strconv"

// FormatCurrencyIDR memformat rupiah bulat dengan pemisah ribuan.
// Contoh: 35000 -> "35.000"
func FormatCurrencyIDR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	formatted := ""
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		if formatted == "" {
			formatted = digits[start:i]
		} else {
			formatted = digits[start:i] + "." + formatted
		}
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}
