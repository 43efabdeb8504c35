package pages

import (
	"fmt"
	"strings"

	"github.com/glowlabs/pagegen/app/blocks"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/templates"
)

// ComparisonAssembler builds the head-to-head comparison page against a fixed
// fictional reference product. The reference is constructed once and reused
// across calls, so the product-B side is identical for every input.
type ComparisonAssembler struct {
	registry  *templates.Registry
	reference *product.Record
}

func NewComparisonAssembler(registry *templates.Registry) *ComparisonAssembler {
	return &ComparisonAssembler{
		registry:  registry,
		reference: newReferenceProduct(),
	}
}

func newReferenceProduct() *product.Record {
	return &product.Record{
		Name:              "LuminaGlow Vitamin C+ Serum",
		Concentration:     "20% Vitamin C",
		SkinTypes:         []string{"Normal", "Dry"},
		KeyIngredients:    []string{"Vitamin C", "Ferulic Acid", "Vitamin E"},
		Benefits:          []string{"Brightening", "Anti-aging", "Radiance boost"},
		UsageInstructions: "Apply 3-4 drops morning and night. Use with sunscreen during day.",
		SideEffects:       []string{"May cause temporary redness in very sensitive skin"},
		Price:             "₹1299",
	}
}

// Reference exposes the fixed product-B record, used by the orchestrator to
// derive the comparison fragment against the same reference.
func (a *ComparisonAssembler) Reference() *product.Record {
	return a.reference
}

// Assemble builds and validates the comparison page.
func (a *ComparisonAssembler) Assemble(rec *product.Record, fragments blocks.Map) (*ComparisonPage, error) {
	b := a.reference

	page := &ComparisonPage{
		PageType:     string(templates.PageComparison),
		ProductAName: rec.Name,
		ProductBName: b.Name,
		ComparisonItems: []ComparisonItem{
			{
				Attribute: "Vitamin C Concentration",
				ProductA:  orDefault(rec.Concentration, "10%"),
				ProductB:  orDefault(b.Concentration, "20%"),
			},
			{
				Attribute: "Key Ingredients",
				ProductA:  strings.Join(rec.KeyIngredients, ", "),
				ProductB:  strings.Join(b.KeyIngredients, ", "),
			},
			{
				Attribute: "Main Benefits",
				ProductA:  strings.Join(rec.Benefits, ", "),
				ProductB:  strings.Join(b.Benefits, ", "),
			},
			{
				Attribute: "Price",
				ProductA:  rec.Price,
				ProductB:  b.Price,
			},
			{
				Attribute: "Suitable for Skin Types",
				ProductA:  strings.Join(rec.SkinTypes, ", "),
				ProductB:  strings.Join(b.SkinTypes, ", "),
			},
			{
				Attribute: "Application Frequency",
				ProductA:  "2-3 drops in morning",
				ProductB:  "3-4 drops morning and night",
			},
			{
				Attribute: "Potential Side Effects",
				ProductA:  joinOrMinimal(rec.SideEffects),
				ProductB:  joinOrMinimal(b.SideEffects),
			},
			{
				Attribute: "Value for Money",
				ProductA:  "Excellent for budget-conscious users",
				ProductB:  "Premium option with higher concentration",
			},
		},
	}

	if err := a.registry.Validate(templates.PageComparison, page.toMap()); err != nil {
		return nil, fmt.Errorf("comparison page failed validation: %w", err)
	}

	return page, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOrMinimal(effects []string) string {
	if len(effects) == 0 {
		return "Minimal"
	}
	return strings.Join(effects, ", ")
}
