package templates

import (
	"embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/glowlabs/pagegen/app/blocks"
)

var (
	// ErrTemplateNotFound is returned when an unknown document type is
	// requested. This is a programmer error, not an input condition.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrSchemaViolation is returned when a document omits a field its
	// template requires.
	ErrSchemaViolation = errors.New("required field missing")
)

//go:embed definitions/*.yaml
var definitionFS embed.FS

// Registry holds the document type definitions. Populated once at
// construction from the embedded definition files; read-only afterwards, so a
// single registry is safe to share across arbitrarily many runs.
type Registry struct {
	definitions map[PageType]*Definition
}

// NewRegistry loads and validates all embedded template definitions.
func NewRegistry() (*Registry, error) {
	entries, err := definitionFS.ReadDir("definitions")
	if err != nil {
		return nil, fmt.Errorf("failed to read template definitions: %w", err)
	}

	r := &Registry{definitions: make(map[PageType]*Definition)}

	for _, entry := range entries {
		data, err := definitionFS.ReadFile("definitions/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var def Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		if err := validateDefinition(&def); err != nil {
			return nil, fmt.Errorf("invalid template %s: %w", entry.Name(), err)
		}

		r.definitions[def.PageType] = &def
	}

	return r, nil
}

// Get returns the definition for a document type.
func (r *Registry) Get(pageType PageType) (*Definition, error) {
	def, ok := r.definitions[pageType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, pageType)
	}
	return def, nil
}

// List returns the registered document types in stable order.
func (r *Registry) List() []PageType {
	types := make([]PageType, 0, len(r.definitions))
	for pageType := range r.definitions {
		types = append(types, pageType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// RequiredBlocks returns the logic block types a document type depends on.
func (r *Registry) RequiredBlocks(pageType PageType) ([]blocks.Type, error) {
	def, err := r.Get(pageType)
	if err != nil {
		return nil, err
	}
	return def.RequiredBlocks, nil
}

// Validate checks a serialized document against its template. Only field
// presence is checked; the first missing required field fails the document.
func (r *Registry) Validate(pageType PageType, doc map[string]any) error {
	def, err := r.Get(pageType)
	if err != nil {
		return err
	}

	for _, field := range def.RequiredFields {
		if !field.Required {
			continue
		}
		if _, ok := doc[field.Name]; !ok {
			return fmt.Errorf("%w: %s", ErrSchemaViolation, field.Name)
		}
	}

	return nil
}

func validateDefinition(def *Definition) error {
	if def.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if def.PageType == "" {
		return fmt.Errorf("page type is required")
	}
	if len(def.RequiredFields) == 0 {
		return fmt.Errorf("at least one required field must be declared")
	}
	for _, field := range def.RequiredFields {
		if field.Name == "" {
			return fmt.Errorf("field name is required")
		}
	}
	return nil
}
