package pages

import (
	"strings"
	"testing"

	"github.com/glowlabs/pagegen/app/blocks"
	"github.com/glowlabs/pagegen/app/product"
	"github.com/glowlabs/pagegen/app/questions"
	"github.com/glowlabs/pagegen/app/templates"
)

func newTestRegistry(t *testing.T) *templates.Registry {
	t.Helper()
	registry, err := templates.NewRegistry()
	if err != nil {
		t.Fatalf("Expected registry to load, got: %v", err)
	}
	return registry
}

func testRecord() *product.Record {
	return &product.Record{
		Name:              "GlowBoost Vitamin C Serum",
		Concentration:     "10% Vitamin C",
		SkinTypes:         []string{"Oily", "Combination"},
		KeyIngredients:    []string{"Vitamin C", "Hyaluronic Acid"},
		Benefits:          []string{"Brightening", "Fades dark spots"},
		UsageInstructions: "Apply 2-3 drops in the morning before sunscreen",
		SideEffects:       []string{"Mild tingling for sensitive skin"},
		Price:             "₹699",
	}
}

func allFragments(rec *product.Record) blocks.Map {
	return blocks.Map{
		blocks.TypeBenefits:   blocks.Benefits(rec),
		blocks.TypeUsage:      blocks.Usage(rec),
		blocks.TypeSafety:     blocks.Safety(rec),
		blocks.TypeIngredient: blocks.Ingredient(rec),
		blocks.TypePrice:      blocks.Price(rec),
	}
}

func TestFAQAssemble(t *testing.T) {
	rec := testRecord()
	assembler := NewFAQAssembler(newTestRegistry(t))

	page, err := assembler.Assemble(rec, questions.Generate(rec), allFragments(rec))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if page.PageType != "faq" {
		t.Errorf("Unexpected page type: %q", page.PageType)
	}
	if page.ProductName != rec.Name {
		t.Errorf("Unexpected product name: %q", page.ProductName)
	}
	if len(page.FAQs) != 15 {
		t.Errorf("Expected 15 FAQ items, got: %d", len(page.FAQs))
	}
	if page.TotalQuestions != len(page.FAQs) {
		t.Errorf("total_questions %d does not match item count %d", page.TotalQuestions, len(page.FAQs))
	}
}

func TestFAQCapsAtFifteen(t *testing.T) {
	rec := testRecord()
	assembler := NewFAQAssembler(newTestRegistry(t))

	qs := make([]questions.Question, 0, 25)
	for i := 0; i < 25; i++ {
		qs = append(qs, questions.Question{
			Category: questions.CategoryInformational,
			Question: "What is this?",
			Context:  "benefits",
		})
	}

	page, err := assembler.Assemble(rec, qs, allFragments(rec))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(page.FAQs) != 15 {
		t.Errorf("Expected cap of 15 items, got: %d", len(page.FAQs))
	}
}

func TestFAQTruncatesBelowMinimum(t *testing.T) {
	rec := testRecord()
	assembler := NewFAQAssembler(newTestRegistry(t))

	qs := []questions.Question{
		{Category: questions.CategoryUsage, Question: "How do I use it?", Context: "usage_instructions"},
		{Category: questions.CategoryPurchase, Question: "How much?", Context: "price"},
	}

	page, err := assembler.Assemble(rec, qs, allFragments(rec))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// The intended minimum of 5 cannot be padded to; fewer questions yield
	// fewer items.
	if len(page.FAQs) != 2 {
		t.Errorf("Expected 2 items, got: %d", len(page.FAQs))
	}
	if page.TotalQuestions != 2 {
		t.Errorf("Expected total_questions 2, got: %d", page.TotalQuestions)
	}
}

func TestFAQAnswersFromContext(t *testing.T) {
	rec := testRecord()
	assembler := NewFAQAssembler(newTestRegistry(t))

	qs := []questions.Question{
		{Category: questions.CategoryInformational, Question: "What is the concentration?", Context: "concentration"},
		{Category: questions.CategoryPurchase, Question: "How much?", Context: "price"},
	}

	page, err := assembler.Assemble(rec, qs, allFragments(rec))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(page.FAQs[0].Answer, "10% Vitamin C") {
		t.Errorf("Expected concentration in answer, got: %q", page.FAQs[0].Answer)
	}
	if !strings.Contains(page.FAQs[1].Answer, "₹699") {
		t.Errorf("Expected price in answer, got: %q", page.FAQs[1].Answer)
	}
}

func TestFAQCategoryDefaults(t *testing.T) {
	rec := testRecord()
	assembler := NewFAQAssembler(newTestRegistry(t))

	qs := []questions.Question{
		{Category: questions.CategoryInformational, Question: "Q?", Context: "not_a_field"},
		{Category: questions.CategorySafety, Question: "Q?", Context: "not_a_field"},
		{Category: questions.Category("Other"), Question: "Q?", Context: "not_a_field"},
	}

	page, err := assembler.Assemble(rec, qs, allFragments(rec))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(page.FAQs[0].Answer, "premium skincare product") {
		t.Errorf("Unexpected informational default: %q", page.FAQs[0].Answer)
	}
	if !strings.Contains(page.FAQs[1].Answer, "patch test") {
		t.Errorf("Unexpected safety default: %q", page.FAQs[1].Answer)
	}
	if !strings.Contains(page.FAQs[2].Answer, "Learn more about") {
		t.Errorf("Unexpected generic fallback: %q", page.FAQs[2].Answer)
	}
}
