package templates

import (
	"github.com/glowlabs/pagegen/app/blocks"
)

// PageType identifies an output document shape.
type PageType string

const (
	PageFAQ        PageType = "faq"
	PageProduct    PageType = "product"
	PageComparison PageType = "comparison"
)

// Field describes a single top-level field a document type must carry.
// DataType is advisory metadata; validation only checks presence.
type Field struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	DataType string `yaml:"data_type"`
}

// Definition is the declarative contract for one document type: the fields it
// must contain, the logic blocks it depends on, and how its fields group into
// sections. Definitions are static configuration, registered once and never
// mutated.
type Definition struct {
	Name           string              `yaml:"name"`
	PageType       PageType            `yaml:"page_type"`
	RequiredFields []Field             `yaml:"required_fields"`
	RequiredBlocks []blocks.Type       `yaml:"required_logic_blocks"`
	Sections       map[string][]string `yaml:"sections"`
}
