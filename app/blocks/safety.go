package blocks

import (
	"fmt"

	"github.com/glowlabs/pagegen/app/product"
)

// noSideEffectsPlaceholder stands in when the record reports no side effects.
const noSideEffectsPlaceholder = "None commonly reported"

// precautions are product-independent safety statements.
var precautions = []string{
	"Perform a patch test before full application",
	"Use sunscreen when using Vitamin C serums",
	"Avoid mixing with certain acids initially",
}

// Safety derives the safety fragment.
func Safety(rec *product.Record) Fragment {
	mild := rec.SideEffects
	if len(mild) == 0 {
		mild = []string{noSideEffectsPlaceholder}
	}

	return Fragment{
		Type: TypeSafety,
		Content: map[string]any{
			"title":             fmt.Sprintf("Safety Information for %s", rec.Name),
			"side_effects":      rec.SideEffects,
			"warning":           "Test on a small area first if you have sensitive skin",
			"precautions":       precautions,
			"mild_side_effects": mild,
		},
		SourceProductName: rec.Name,
	}
}
