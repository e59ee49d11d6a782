// Package card validates card details against per-brand format rules.
//
// Validation is pure: it reads the card and a reference time, mutates
// nothing, and returns a typed error naming the first rule that failed.
package card

import (
	"strconv"
	"strings"
	"time"

	"paycore/internal/models"
)

// Installment bounds
const (
	MinInstallments = 1
	MaxInstallments = 12
)

// Validate checks card against its brand's rules as of the given time.
// Rules run in a fixed order and the first failure wins: brand, number,
// cvv, installments, expiration.
func Validate(card models.CardDetails, asOf time.Time) error {
	rule, ok := brandRules[card.Brand]
	if !ok {
		return ErrInvalidBrand
	}

	if !rule.Number.MatchString(card.Number) {
		return &NumberError{Brand: card.Brand}
	}

	if len(card.CVV) != rule.CVVLen || !cvvDigits.MatchString(card.CVV) {
		return &CVVError{Brand: card.Brand}
	}

	if card.Installments < MinInstallments || card.Installments > MaxInstallments {
		return ErrInvalidInstallments
	}

	month, year, err := parseExpiration(card.Expiration)
	if err != nil {
		return err
	}

	// Ordinal two-digit-year comparison, kept as-is from the payment flow
	// this replaces. It misorders dates across a century rollover (e.g.
	// "12/99" reads as later than "01/00").
	curYear := asOf.Year() % 100
	curMonth := int(asOf.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return ErrExpiredCard
	}

	return nil
}

// parseExpiration splits an "MM/YY" string into month and two-digit year.
func parseExpiration(exp string) (month, year int, err error) {
	parts := strings.Split(exp, "/")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidExpiration
	}

	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidExpiration
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || year < 0 {
		return 0, 0, ErrInvalidExpiration
	}

	return month, year, nil
}
