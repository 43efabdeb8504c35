package blocks

import (
	"fmt"

	"github.com/glowlabs/pagegen/app/product"
)

// Benefits derives the benefits fragment. The highlighted subset is the first
// two benefits, or fewer when the record lists fewer.
func Benefits(rec *product.Record) Fragment {
	highlighted := rec.Benefits
	if len(highlighted) > 2 {
		highlighted = highlighted[:2]
	}

	return Fragment{
		Type: TypeBenefits,
		Content: map[string]any{
			"title":                fmt.Sprintf("%s Benefits", rec.Name),
			"items":                rec.Benefits,
			"description":          fmt.Sprintf("Experience %d key benefits with %s", len(rec.Benefits), rec.Name),
			"highlighted_benefits": highlighted,
		},
		SourceProductName: rec.Name,
	}
}
