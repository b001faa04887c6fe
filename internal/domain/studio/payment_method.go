package studio

// PaymentMethod partitions money movements into cash and digital.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "Cash"
	PaymentMethodDigital PaymentMethod = "Digital"
)

// ClassifyPaymentMethod maps a stored method string onto the cash/digital
// partition. Only the exact value "Digital" is digital; any other value,
// including empty or unrecognized strings, counts as cash so the two buckets
// always sum to the whole.
func ClassifyPaymentMethod(method string) PaymentMethod {
	if method == string(PaymentMethodDigital) {
		return PaymentMethodDigital
	}
	return PaymentMethodCash
}

// IsDigital reports whether the method string classifies as digital.
func IsDigital(method string) bool {
	return ClassifyPaymentMethod(method) == PaymentMethodDigital
}
