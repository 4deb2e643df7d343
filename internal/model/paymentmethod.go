package model

// PaymentMethodType describes the kind of account behind a payment method.
type PaymentMethodType string

const (
	// MethodBank represents a checking or savings account.
	MethodBank PaymentMethodType = "bank"
	// MethodCreditCard represents a credit card.
	MethodCreditCard PaymentMethodType = "credit-card"
	// MethodCash represents physical cash.
	MethodCash PaymentMethodType = "cash"
)

// Valid reports whether the type is one of the known tokens.
func (t PaymentMethodType) Valid() bool {
	return t == MethodBank || t == MethodCreditCard || t == MethodCash
}

// PaymentMethod is an account or instrument a transaction was paid with.
type PaymentMethod struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Type PaymentMethodType `json:"type"`
	Icon string            `json:"icon,omitempty"`
}
