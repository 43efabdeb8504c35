package blocks

import (
	"fmt"
	"strings"

	"github.com/glowlabs/pagegen/app/product"
)

// Comparison derives the two-product comparison fragment.
func Comparison(a, b *product.Record) Fragment {
	return Fragment{
		Type: TypeComparison,
		Content: map[string]any{
			"title":     fmt.Sprintf("%s vs %s", a.Name, b.Name),
			"product_a": productSummary(a),
			"product_b": productSummary(b),
			"comparison_metrics": []map[string]string{
				{
					"metric":    "Concentration",
					"product_a": orNA(a.Concentration),
					"product_b": orNA(b.Concentration),
				},
				{
					"metric":    "Price",
					"product_a": a.Price,
					"product_b": b.Price,
				},
				{
					"metric":    "Suitable Skin Types",
					"product_a": strings.Join(a.SkinTypes, ", "),
					"product_b": strings.Join(b.SkinTypes, ", "),
				},
			},
		},
		SourceProductName: fmt.Sprintf("%s and %s", a.Name, b.Name),
	}
}

func productSummary(rec *product.Record) map[string]any {
	return map[string]any{
		"name":          rec.Name,
		"concentration": rec.Concentration,
		"benefits":      rec.Benefits,
		"price":         rec.Price,
		"skin_types":    rec.SkinTypes,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
