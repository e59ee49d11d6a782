package card

import (
	"regexp"

	"paycore/internal/models"
)

// Rule holds the format constraints for one brand.
type Rule struct {
	Number *regexp.Regexp
	CVVLen int
}

// Static per-brand rule table. Adding a brand means adding a row here,
// not a new branch in the validator.
var brandRules = map[models.CardBrand]Rule{
	models.BrandVisa:       {Number: regexp.MustCompile(`^4[0-9]{15}$`), CVVLen: 3},
	models.BrandMastercard: {Number: regexp.MustCompile(`^5[1-5][0-9]{14}$`), CVVLen: 3},
	models.BrandAmex:       {Number: regexp.MustCompile(`^3[47][0-9]{13}$`), CVVLen: 4},
}

var cvvDigits = regexp.MustCompile(`^[0-9]+$`)
