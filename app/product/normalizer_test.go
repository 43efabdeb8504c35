package product

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeRequiresName(t *testing.T) {
	raw := map[string]any{
		"Concentration": "10% Vitamin C",
		"Price":         "₹699",
	}

	_, err := Normalize(raw)
	if err == nil {
		t.Fatal("Expected error when no name alias is present")
	}
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("Expected ErrMissingRequiredField, got: %v", err)
	}
}

func TestNormalizeBlankNameFails(t *testing.T) {
	raw := map[string]any{"name": "   "}

	_, err := Normalize(raw)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("Expected ErrMissingRequiredField for blank name, got: %v", err)
	}
}

func TestNormalizeAliases(t *testing.T) {
	raw := map[string]any{
		"Product Name":    "GlowBoost Vitamin C Serum",
		"Concentration":   "10% Vitamin C",
		"Skin Type":       "Oily, Combination",
		"Key Ingredients": "Vitamin C, Hyaluronic Acid",
		"Benefits":        "Brightening, Fades dark spots",
		"How to Use":      "Apply 2-3 drops in the morning before sunscreen",
		"Side Effects":    "Mild tingling for sensitive skin",
		"Price":           "₹699",
	}

	rec, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Name != "GlowBoost Vitamin C Serum" {
		t.Errorf("Unexpected name: %q", rec.Name)
	}
	if rec.Concentration != "10% Vitamin C" {
		t.Errorf("Unexpected concentration: %q", rec.Concentration)
	}
	if !reflect.DeepEqual(rec.SkinTypes, []string{"Oily", "Combination"}) {
		t.Errorf("Unexpected skin types: %v", rec.SkinTypes)
	}
	if !reflect.DeepEqual(rec.KeyIngredients, []string{"Vitamin C", "Hyaluronic Acid"}) {
		t.Errorf("Unexpected ingredients: %v", rec.KeyIngredients)
	}
	if rec.Price != "₹699" {
		t.Errorf("Unexpected price: %q", rec.Price)
	}
}

func TestNormalizeListFormatEquivalence(t *testing.T) {
	fromString, err := Normalize(map[string]any{
		"name":     "Test",
		"benefits": "A, B, C",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	fromList, err := Normalize(map[string]any{
		"name":     "Test",
		"benefits": []any{"A", "B", "C"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(fromString.Benefits, want) {
		t.Errorf("String-encoded benefits normalized to %v, want %v", fromString.Benefits, want)
	}
	if !reflect.DeepEqual(fromList.Benefits, want) {
		t.Errorf("List-encoded benefits normalized to %v, want %v", fromList.Benefits, want)
	}
}

func TestNormalizeDropsEmptyListSegments(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"name":     "Test",
		"benefits": "A,, B ,",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(rec.Benefits, []string{"A", "B"}) {
		t.Errorf("Unexpected benefits: %v", rec.Benefits)
	}
}

func TestNormalizeDefaultsForMissingFields(t *testing.T) {
	rec, err := Normalize(map[string]any{"name": "Bare Product"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Concentration != "" || rec.UsageInstructions != "" || rec.Price != "" {
		t.Error("Missing scalar fields should default to empty strings")
	}
	if len(rec.SkinTypes) != 0 || len(rec.KeyIngredients) != 0 ||
		len(rec.Benefits) != 0 || len(rec.SideEffects) != 0 {
		t.Error("Missing list fields should default to empty lists")
	}
	if rec.SkinTypes == nil || rec.Benefits == nil {
		t.Error("List fields should be empty, not nil")
	}
}

func TestNormalizeNilScalarBecomesEmpty(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"name":  "Test",
		"price": nil,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Price != "" {
		t.Errorf("Expected empty price, got: %q", rec.Price)
	}
}

func TestNormalizeIgnoresUnrecognizedKeys(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"name":          "Test",
		"sku":           "A-123",
		"internal_note": "should be ignored",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if rec.Name != "Test" {
		t.Errorf("Unexpected name: %q", rec.Name)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := map[string]any{
		"Product Name":    "GlowBoost Vitamin C Serum",
		"Concentration":   "10% Vitamin C",
		"Skin Type":       "Oily, Combination",
		"Key Ingredients": "Vitamin C, Hyaluronic Acid",
		"Benefits":        "Brightening, Fades dark spots",
		"How to Use":      "Apply 2-3 drops in the morning before sunscreen",
		"Side Effects":    "Mild tingling for sensitive skin",
		"Price":           "₹699",
	}

	first, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	second, err := Normalize(first.ToMap())
	if err != nil {
		t.Fatalf("Expected no error on re-normalization, got: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalization is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeAliasPriority(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"name":         "Canonical",
		"Product Name": "Display",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if rec.Name != "Canonical" {
		t.Errorf("Expected the most specific alias to win, got: %q", rec.Name)
	}
}
