package pages

import (
	"fmt"

	"github.com/glowlabs/pagegen/app/blocks"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/templates"
)

// ProductAssembler builds the product detail page. The overview and
// compatibility sections are always present; every other section appears only
// when its fragment was supplied.
type ProductAssembler struct {
	registry *templates.Registry
}

func NewProductAssembler(registry *templates.Registry) *ProductAssembler {
	return &ProductAssembler{registry: registry}
}

// Assemble builds and validates the product page.
func (a *ProductAssembler) Assemble(rec *product.Record, fragments blocks.Map) (*ProductPage, error) {
	concentration := rec.Concentration
	if concentration == "" {
		concentration = "As formulated"
	}

	sections := SectionList{
		{Name: "overview", Fields: []ProductPageField{
			{Label: "Product Name", Value: rec.Name, DataType: "string"},
			{Label: "Concentration", Value: concentration, DataType: "string"},
		}},
	}

	if fragment, ok := fragments[blocks.TypeBenefits]; ok {
		sections = append(sections, Section{Name: "benefits", Fields: []ProductPageField{
			{Label: "Title", Value: fragment.Content["title"], DataType: "string"},
			{Label: "Benefits", Value: fragment.Content["items"], DataType: "list"},
		}})
	}

	if fragment, ok := fragments[blocks.TypeIngredient]; ok {
		sections = append(sections, Section{Name: "ingredients", Fields: []ProductPageField{
			{Label: "Title", Value: fragment.Content["title"], DataType: "string"},
			{Label: "Ingredients", Value: fragment.Content["ingredients"], DataType: "list"},
			{Label: "Concentration", Value: fragment.Content["concentration"], DataType: "string"},
		}})
	}

	if fragment, ok := fragments[blocks.TypeUsage]; ok {
		sections = append(sections, Section{Name: "usage", Fields: []ProductPageField{
			{Label: "Title", Value: fragment.Content["title"], DataType: "string"},
			{Label: "Instructions", Value: fragment.Content["instructions"], DataType: "string"},
			{Label: "Timing", Value: fragment.Content["application_timing"], DataType: "string"},
		}})
	}

	if fragment, ok := fragments[blocks.TypeSafety]; ok {
		sections = append(sections, Section{Name: "safety", Fields: []ProductPageField{
			{Label: "Title", Value: fragment.Content["title"], DataType: "string"},
			{Label: "Side Effects", Value: fragment.Content["side_effects"], DataType: "list"},
			{Label: "Precautions", Value: fragment.Content["precautions"], DataType: "list"},
		}})
	}

	if fragment, ok := fragments[blocks.TypePrice]; ok {
		sections = append(sections, Section{Name: "price", Fields: []ProductPageField{
			{Label: "Price", Value: fragment.Content["price"], DataType: "string"},
			{Label: "Currency", Value: fragment.Content["currency"], DataType: "string"},
			{Label: "Value Proposition", Value: fragment.Content["value_proposition"], DataType: "string"},
		}})
	}

	sections = append(sections, Section{Name: "compatibility", Fields: []ProductPageField{
		{Label: "Suitable Skin Types", Value: rec.SkinTypes, DataType: "list"},
	}})

	page := &ProductPage{
		PageType:    string(templates.PageProduct),
		ProductName: rec.Name,
		Sections:    sections,
	}

	if err := a.registry.Validate(templates.PageProduct, page.toMap()); err != nil {
		return nil, fmt.Errorf("product page failed validation: %w", err)
	}

	return page, nil
}
