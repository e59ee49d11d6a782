package models

// CardBrand identifies the card network a card belongs to.
type CardBrand string

// Supported card brands
const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
)

// CardDetails holds the card attributes submitted with a payment.
// It is validated per request and never stored.
type CardDetails struct {
	Brand        CardBrand `json:"brand"`
	Number       string    `json:"number"`
	Installments int       `json:"installments"`
	Expiration   string    `json:"expiration"` // MM/YY
	CVV          string    `json:"cvv"`
}
