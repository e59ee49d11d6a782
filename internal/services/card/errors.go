package card

import (
	"errors"
	"fmt"

	"paycore/internal/models"
)

// Validation errors
var (
	ErrInvalidBrand        = errors.New("invalid card brand")
	ErrInvalidInstallments = errors.New("invalid installment count")
	ErrInvalidExpiration   = errors.New("invalid expiration date")
	ErrExpiredCard         = errors.New("expired card")
)

// NumberError reports a card number that does not match its brand's pattern.
type NumberError struct {
	Brand models.CardBrand
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid card number for %s", e.Brand)
}

// CVVError reports a CVV with the wrong length for the brand.
type CVVError struct {
	Brand models.CardBrand
}

func (e *CVVError) Error() string {
	return fmt.Sprintf("invalid cvv for %s", e.Brand)
}
