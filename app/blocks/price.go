package blocks

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"

	"github.com/glowlabs/pagegen/app/product"
)

// premiumThreshold splits affordable from mid-range pricing.
const premiumThreshold = 500

var rupee = currency.MustParseISO("INR")

// Price derives the price fragment. The numeric component is taken from the
// leading whitespace-delimited token of the price string, digits only; the
// Rupee sign selects INR, anything else reports USD.
func Price(rec *product.Record) Fragment {
	numeric := extractNumericPrice(rec.Price)

	unit := currency.USD
	if strings.ContainsRune(rec.Price, '₹') {
		unit = rupee
	}

	priceRange := "Affordable"
	if numeric > premiumThreshold {
		priceRange = "Mid-range premium"
	}

	return Fragment{
		Type: TypePrice,
		Content: map[string]any{
			"title":             fmt.Sprintf("Pricing for %s", rec.Name),
			"price":             rec.Price,
			"price_numeric":     numeric,
			"currency":          unit.String(),
			"value_proposition": "Premium quality at accessible pricing",
			"price_range":       priceRange,
		},
		SourceProductName: rec.Name,
	}
}

func extractNumericPrice(price string) int {
	fields := strings.Fields(price)
	if len(fields) == 0 {
		return 0
	}

	var digits strings.Builder
	for _, r := range fields[0] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
