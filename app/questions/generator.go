// Package questions produces the fixed set of user questions that seed the
// FAQ page. Question wording is template-driven; only the product name is
// interpolated, so the set is fully deterministic for any valid record.
package questions

import (
	"fmt"

	"github.com/glowlabs/pagegen/app/product"
)

// Category classifies a question by user intent.
type Category string

const (
	CategoryInformational Category = "Informational"
	CategoryUsage         Category = "Usage"
	CategorySafety        Category = "Safety"
	CategoryPurchase      Category = "Purchase"
	CategoryComparison    Category = "Comparison"
)

// Question pairs a templated question with the canonical record field that
// answers it.
type Question struct {
	Category Category
	Question string
	Context  string
}

// questionTemplate is one fixed entry of the generation table. The format
// string takes the product name as its only argument.
type questionTemplate struct {
	category Category
	format   string
	context  string
}

// questionTemplates is the full generation table: 4 Informational, 4 Usage,
// 4 Safety, 4 Purchase and 3 Comparison questions, in that order.
var questionTemplates = []questionTemplate{
	{CategoryInformational, "What is the concentration of %s?", "concentration"},
	{CategoryInformational, "What are the key ingredients in %s?", "key_ingredients"},
	{CategoryInformational, "What skin types is %s suitable for?", "skin_types"},
	{CategoryInformational, "What are the main benefits of %s?", "benefits"},
	{CategoryUsage, "How do I use %s?", "usage_instructions"},
	{CategoryUsage, "When should I apply %s in my skincare routine?", "usage_instructions"},
	{CategoryUsage, "How many drops of %s should I use per application?", "usage_instructions"},
	{CategoryUsage, "Can I use %s both morning and night?", "usage_instructions"},
	{CategorySafety, "What are the side effects of %s?", "side_effects"},
	{CategorySafety, "Is %s safe for sensitive skin?", "side_effects"},
	{CategorySafety, "Can I use %s with other active ingredients?", "side_effects"},
	{CategorySafety, "Are there any contraindications or interactions with %s?", "side_effects"},
	{CategoryPurchase, "What is the price of %s?", "price"},
	{CategoryPurchase, "Is %s value for money?", "price"},
	{CategoryPurchase, "Where can I purchase %s?", "price"},
	{CategoryPurchase, "Does %s offer a money-back guarantee?", "price"},
	{CategoryComparison, "How does %s compare to other vitamin C serums?", "benefits"},
	{CategoryComparison, "Is %s better than alternative products?", "concentration"},
	{CategoryComparison, "What makes %s unique in the market?", "key_ingredients"},
}

// Generate returns the fixed question set for a record.
func Generate(rec *product.Record) []Question {
	result := make([]Question, 0, len(questionTemplates))
	for _, tmpl := range questionTemplates {
		result = append(result, Question{
			Category: tmpl.category,
			Question: fmt.Sprintf(tmpl.format, rec.Name),
			Context:  tmpl.context,
		})
	}
	return result
}
