// Package pipeline sequences the content generation stages: normalize the raw
// record, generate questions and content fragments, then assemble the three
// output pages. The pipeline holds no content logic of its own.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/glowlabs/pagegen/app/blocks"
	"github.com/glowlabs/pagegen/app/pages"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/questions"
	"github.com/glowlabs/pagegen/app/templates"
)

// Result bundles the three documents produced by one run. A run either
// produces all three or fails before producing any.
type Result struct {
	Record     *product.Record
	FAQ        *pages.FAQPage
	Product    *pages.ProductPage
	Comparison *pages.ComparisonPage
}

type Pipeline struct {
	registry   *templates.Registry
	faq        *pages.FAQAssembler
	product    *pages.ProductAssembler
	comparison *pages.ComparisonAssembler
}

func New(registry *templates.Registry) *Pipeline {
	return &Pipeline{
		registry:   registry,
		faq:        pages.NewFAQAssembler(registry),
		product:    pages.NewProductAssembler(registry),
		comparison: pages.NewComparisonAssembler(registry),
	}
}

// Run executes all stages for one raw product record.
func (p *Pipeline) Run(raw map[string]any) (*Result, error) {
	rec, err := product.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize product record: %w", err)
	}
	slog.Debug("Product record normalized", "product", rec.Name)

	qs := questions.Generate(rec)
	slog.Debug("Questions generated", "product", rec.Name, "count", len(qs))

	fragments, err := p.generateFragments(rec)
	if err != nil {
		return nil, err
	}
	slog.Debug("Content fragments generated", "product", rec.Name, "count", len(fragments))

	faqPage, err := p.faq.Assemble(rec, qs, fragments)
	if err != nil {
		return nil, err
	}

	productPage, err := p.product.Assemble(rec, fragments)
	if err != nil {
		return nil, err
	}

	comparisonPage, err := p.comparison.Assemble(rec, fragments)
	if err != nil {
		return nil, err
	}

	slog.Debug("Pages assembled", "product", rec.Name)

	return &Result{
		Record:     rec,
		FAQ:        faqPage,
		Product:    productPage,
		Comparison: comparisonPage,
	}, nil
}

// generateFragments produces the union of fragments the registered page types
// declare as dependencies. The comparison fragment is derived against the
// comparison assembler's reference product.
func (p *Pipeline) generateFragments(rec *product.Record) (blocks.Map, error) {
	needed := make(map[blocks.Type]bool)
	for _, pageType := range p.registry.List() {
		required, err := p.registry.RequiredBlocks(pageType)
		if err != nil {
			return nil, err
		}
		for _, blockType := range required {
			needed[blockType] = true
		}
	}

	fragments := make(blocks.Map, len(needed))
	for blockType := range needed {
		switch blockType {
		case blocks.TypeBenefits:
			fragments[blockType] = blocks.Benefits(rec)
		case blocks.TypeUsage:
			fragments[blockType] = blocks.Usage(rec)
		case blocks.TypeSafety:
			fragments[blockType] = blocks.Safety(rec)
		case blocks.TypeIngredient:
			fragments[blockType] = blocks.Ingredient(rec)
		case blocks.TypePrice:
			fragments[blockType] = blocks.Price(rec)
		case blocks.TypeComparison:
			fragments[blockType] = blocks.Comparison(rec, p.comparison.Reference())
		default:
			return nil, fmt.Errorf("no generator registered for block type %q", blockType)
		}
	}

	return fragments, nil
}
