package blocks

import (
	"fmt"

	"github.com/glowlabs/pagegen/app/product"
)

// defaultConcentration is used when the record does not state one.
const defaultConcentration = "As formulated"

// ingredientDescriptions is a static lookup of ingredients we can describe.
// Ingredients not listed here simply get no description.
var ingredientDescriptions = map[string]string{
	"Vitamin C":       "Powerful antioxidant for brightening and skin radiance",
	"Hyaluronic Acid": "Hydration booster that plumps and moisturizes skin",
}

// Ingredient derives the ingredient fragment. Only ingredients recognized by
// name are augmented with a description.
func Ingredient(rec *product.Record) Fragment {
	concentration := rec.Concentration
	if concentration == "" {
		concentration = defaultConcentration
	}

	descriptions := make(map[string]string)
	for _, name := range rec.KeyIngredients {
		if desc, ok := ingredientDescriptions[name]; ok {
			descriptions[name] = desc
		}
	}

	return Fragment{
		Type: TypeIngredient,
		Content: map[string]any{
			"title":                   fmt.Sprintf("Key Ingredients in %s", rec.Name),
			"ingredients":             rec.KeyIngredients,
			"concentration":           concentration,
			"ingredient_count":        len(rec.KeyIngredients),
			"ingredient_descriptions": descriptions,
		},
		SourceProductName: rec.Name,
	}
}
