package product

// Record is the validated product model. Single source of truth after
// normalization; every downstream stage reads from it, none writes back.
type Record struct {
	Name              string
	Concentration     string
	SkinTypes         []string
	KeyIngredients    []string
	Benefits          []string
	UsageInstructions string
	SideEffects       []string
	Price             string
}

// ToMap converts the record to a plain mapping keyed by the canonical field
// names. The canonical keys are themselves accepted aliases, so the output of
// ToMap normalizes back to an equal record.
func (r *Record) ToMap() map[string]any {
	return map[string]any{
		"name":               r.Name,
		"concentration":      r.Concentration,
		"skin_types":         r.SkinTypes,
		"key_ingredients":    r.KeyIngredients,
		"benefits":           r.Benefits,
		"usage_instructions": r.UsageInstructions,
		"side_effects":       r.SideEffects,
		"price":              r.Price,
	}
}
