package product

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequiredField is returned when a required field cannot be located
// under any of its accepted aliases.
var ErrMissingRequiredField = errors.New("required field missing")

// Accepted alias keys per canonical field, most specific first. Raw records
// arrive with arbitrary key spellings; the first matching alias wins.
var (
	nameAliases          = []string{"name", "Name", "Product Name", "product_name"}
	concentrationAliases = []string{"concentration", "Concentration"}
	skinTypeAliases      = []string{"skin_types", "Skin Type", "skin type"}
	ingredientAliases    = []string{"key_ingredients", "Key Ingredients"}
	benefitAliases       = []string{"benefits", "Benefits"}
	usageAliases         = []string{"usage_instructions", "How to Use", "how to use"}
	sideEffectAliases    = []string{"side_effects", "Side Effects"}
	priceAliases         = []string{"price", "Price"}
)

// Normalize converts an arbitrarily-keyed raw product mapping into a canonical
// Record. Unrecognized keys are ignored. Missing optional fields default to
// empty values; only the product name is required.
func Normalize(raw map[string]any) (*Record, error) {
	name := scalarField(raw, nameAliases)
	if name == "" {
		return nil, fmt.Errorf("%w: product name", ErrMissingRequiredField)
	}

	record := &Record{
		Name:              name,
		Concentration:     scalarField(raw, concentrationAliases),
		SkinTypes:         listField(raw, skinTypeAliases),
		KeyIngredients:    listField(raw, ingredientAliases),
		Benefits:          listField(raw, benefitAliases),
		UsageInstructions: scalarField(raw, usageAliases),
		SideEffects:       listField(raw, sideEffectAliases),
		Price:             scalarField(raw, priceAliases),
	}

	return record, nil
}

// scalarField returns the trimmed string value of the first present alias, or
// an empty string when none matches.
func scalarField(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		if value, ok := raw[key]; ok {
			return normalizeString(value)
		}
	}
	return ""
}

// listField returns the normalized list value of the first present alias.
// Native sequences are taken element by element; a single string is split on
// commas. Elements that trim to empty are dropped.
func listField(raw map[string]any, aliases []string) []string {
	for _, key := range aliases {
		if value, ok := raw[key]; ok {
			return normalizeList(value)
		}
	}
	return []string{}
}

func normalizeString(value any) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", value))
}

func normalizeList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return trimAll(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s := normalizeString(item); s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		return trimAll(strings.Split(v, ","))
	default:
		if s := normalizeString(value); s != "" {
			return []string{s}
		}
		return []string{}
	}
}

func trimAll(values []string) []string {
	items := make([]string, 0, len(values))
	for _, value := range values {
		if s := strings.TrimSpace(value); s != "" {
			items = append(items, s)
		}
	}
	return items
}
