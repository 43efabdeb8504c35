package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/glowlabs/pagegen/app/blocks"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("Expected registry to load, got: %v", err)
	}
	return registry
}

func TestRegistryLoadsThreeTemplates(t *testing.T) {
	registry := newTestRegistry(t)

	types := registry.List()
	if len(types) != 3 {
		t.Fatalf("Expected 3 templates, got: %d", len(types))
	}

	for _, pageType := range []PageType{PageFAQ, PageProduct, PageComparison} {
		if _, err := registry.Get(pageType); err != nil {
			t.Errorf("Expected template for %s, got: %v", pageType, err)
		}
	}
}

func TestRegistryUnknownType(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Get(PageType("landing"))
	if err == nil {
		t.Fatal("Expected error for unknown template type")
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got: %v", err)
	}
}

func TestRegistryRequiredBlocks(t *testing.T) {
	registry := newTestRegistry(t)

	required, err := registry.RequiredBlocks(PageProduct)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := map[blocks.Type]bool{
		blocks.TypeBenefits:   true,
		blocks.TypeUsage:      true,
		blocks.TypeSafety:     true,
		blocks.TypeIngredient: true,
		blocks.TypePrice:      true,
	}
	if len(required) != len(want) {
		t.Fatalf("Expected %d required blocks, got: %v", len(want), required)
	}
	for _, blockType := range required {
		if !want[blockType] {
			t.Errorf("Unexpected required block: %s", blockType)
		}
	}

	comparisonBlocks, err := registry.RequiredBlocks(PageComparison)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(comparisonBlocks) != 1 || comparisonBlocks[0] != blocks.TypeComparison {
		t.Errorf("Unexpected comparison dependencies: %v", comparisonBlocks)
	}
}

func TestValidatePassesCompleteDocument(t *testing.T) {
	registry := newTestRegistry(t)

	doc := map[string]any{
		"page_type":       "faq",
		"product_name":    "Test",
		"total_questions": 5,
		"faqs":            []any{},
	}

	if err := registry.Validate(PageFAQ, doc); err != nil {
		t.Errorf("Expected valid document, got: %v", err)
	}
}

func TestValidateNamesFirstMissingField(t *testing.T) {
	registry := newTestRegistry(t)

	doc := map[string]any{
		"page_type":    "faq",
		"product_name": "Test",
		// total_questions and faqs omitted
	}

	err := registry.Validate(PageFAQ, doc)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("Expected ErrSchemaViolation, got: %v", err)
	}
	if !strings.Contains(err.Error(), "total_questions") {
		t.Errorf("Expected the first missing field to be named, got: %v", err)
	}
}

func TestValidatePresenceOnly(t *testing.T) {
	registry := newTestRegistry(t)

	// Wrong value kinds are accepted; data_type metadata is advisory.
	doc := map[string]any{
		"page_type":       42,
		"product_name":    []string{"not", "a", "string"},
		"total_questions": "five",
		"faqs":            "not a list",
	}

	if err := registry.Validate(PageFAQ, doc); err != nil {
		t.Errorf("Validation should only check presence, got: %v", err)
	}
}

func TestValidateUnknownTypeFails(t *testing.T) {
	registry := newTestRegistry(t)

	err := registry.Validate(PageType("unknown"), map[string]any{})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got: %v", err)
	}
}
