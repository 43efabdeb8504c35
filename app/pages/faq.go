package pages

import (
	"fmt"
	"strings"

	"github.com/glowlabs/pagegen/app/blocks"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/questions"
	"github.com/glowlabs/pagegen/app/templates"
)

const (
	// maxFAQs caps how many questions make it onto the page.
	maxFAQs = 15

	// minFAQs is the intended floor. The assembler cannot pad, so when fewer
	// questions are supplied the page simply carries fewer items.
	minFAQs = 5
)

// FAQAssembler builds the FAQ page from the record and the generated
// questions. Answers come from a per-field answer table keyed by the
// question's context, with category-level defaults as fallback.
type FAQAssembler struct {
	registry *templates.Registry
}

func NewFAQAssembler(registry *templates.Registry) *FAQAssembler {
	return &FAQAssembler{registry: registry}
}

// Assemble builds and validates the FAQ page.
func (a *FAQAssembler) Assemble(rec *product.Record, qs []questions.Question, fragments blocks.Map) (*FAQPage, error) {
	limit := len(qs)
	if limit > maxFAQs {
		limit = maxFAQs
	}

	items := make([]FAQItem, 0, limit)
	for _, q := range qs[:limit] {
		items = append(items, FAQItem{
			Question: q.Question,
			Answer:   a.answer(q, rec),
			Category: string(q.Category),
		})
	}

	page := &FAQPage{
		PageType:       string(templates.PageFAQ),
		ProductName:    rec.Name,
		TotalQuestions: len(items),
		FAQs:           items,
	}

	if err := a.registry.Validate(templates.PageFAQ, page.toMap()); err != nil {
		return nil, fmt.Errorf("faq page failed validation: %w", err)
	}

	return page, nil
}

func (a *FAQAssembler) answer(q questions.Question, rec *product.Record) string {
	switch q.Context {
	case "concentration":
		return fmt.Sprintf("The concentration of %s is %s.", rec.Name, rec.Concentration)
	case "key_ingredients":
		return fmt.Sprintf("Key ingredients include: %s.", strings.Join(rec.KeyIngredients, ", "))
	case "skin_types":
		return fmt.Sprintf("Suitable for %s skin types.", strings.Join(rec.SkinTypes, ", "))
	case "benefits":
		return fmt.Sprintf("Main benefits: %s.", strings.Join(rec.Benefits, ", "))
	case "usage_instructions":
		return rec.UsageInstructions
	case "side_effects":
		effects := "No major side effects commonly reported."
		if len(rec.SideEffects) > 0 {
			effects = strings.Join(rec.SideEffects, ", ")
		}
		return fmt.Sprintf("Common experiences include: %s", effects)
	case "price":
		return fmt.Sprintf("The price is %s.", rec.Price)
	}

	return a.defaultAnswer(q.Category, rec)
}

func (a *FAQAssembler) defaultAnswer(category questions.Category, rec *product.Record) string {
	switch category {
	case questions.CategoryInformational:
		return fmt.Sprintf("%s is a premium skincare product with carefully selected ingredients.", rec.Name)
	case questions.CategoryUsage:
		if rec.UsageInstructions != "" {
			return rec.UsageInstructions
		}
		return "Follow the instructions on the product packaging."
	case questions.CategorySafety:
		return "Always perform a patch test first. If irritation occurs, discontinue use."
	case questions.CategoryPurchase:
		return fmt.Sprintf("Available at premium skincare retailers. Price: %s", rec.Price)
	default:
		return fmt.Sprintf("Learn more about %s for your skincare needs.", rec.Name)
	}
}
