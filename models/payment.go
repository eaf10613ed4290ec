package models

const PaymentMethodCash = "CASH"

// PaymentMethods adalah daftar label pembayaran yang dikenal.
var PaymentMethods = []string{
	PaymentMethodCash,
	"TF BNI",
	"TF BSI",
	"TF DKI",
	"TF JAGO",
	"TF MANDIRI",
}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
