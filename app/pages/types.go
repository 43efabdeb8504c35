package pages

import (
	"bytes"
	"encoding/json"
)

// Output document shapes. Each serializes to the UTF-8 JSON object consumed
// by downstream collaborators.

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type FAQPage struct {
	PageType       string    `json:"page_type"`
	ProductName    string    `json:"product_name"`
	TotalQuestions int       `json:"total_questions"`
	FAQs           []FAQItem `json:"faqs"`
}

type ProductPageField struct {
	Label    string `json:"label"`
	Value    any    `json:"value"`
	DataType string `json:"data_type"`
}

type Section struct {
	Name   string
	Fields []ProductPageField
}

// SectionList keeps product page sections in assembly order. It marshals to a
// JSON object whose keys appear in that order, which encoding/json's map
// handling would not preserve.
type SectionList []Section

func (s SectionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(section.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		fields, err := json.Marshal(section.Fields)
		if err != nil {
			return nil, err
		}
		buf.Write(fields)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns a section's fields by name.
func (s SectionList) Get(name string) ([]ProductPageField, bool) {
	for _, section := range s {
		if section.Name == name {
			return section.Fields, true
		}
	}
	return nil, false
}

// Names returns the section names in order.
func (s SectionList) Names() []string {
	names := make([]string, 0, len(s))
	for _, section := range s {
		names = append(names, section.Name)
	}
	return names
}

type ProductPage struct {
	PageType    string      `json:"page_type"`
	ProductName string      `json:"product_name"`
	Sections    SectionList `json:"sections"`
}

type ComparisonItem struct {
	Attribute string `json:"attribute"`
	ProductA  string `json:"product_a"`
	ProductB  string `json:"product_b"`
}

type ComparisonPage struct {
	PageType        string           `json:"page_type"`
	ProductAName    string           `json:"product_a_name"`
	ProductBName    string           `json:"product_b_name"`
	ComparisonItems []ComparisonItem `json:"comparison_items"`
}

// toMap views a document as a generic mapping for template validation.

func (p *FAQPage) toMap() map[string]any {
	return map[string]any{
		"page_type":       p.PageType,
		"product_name":    p.ProductName,
		"total_questions": p.TotalQuestions,
		"faqs":            p.FAQs,
	}
}

func (p *ProductPage) toMap() map[string]any {
	return map[string]any{
		"page_type":    p.PageType,
		"product_name": p.ProductName,
		"sections":     p.Sections,
	}
}

func (p *ComparisonPage) toMap() map[string]any {
	return map[string]any{
		"page_type":        p.PageType,
		"product_a_name":   p.ProductAName,
		"product_b_name":   p.ProductBName,
		"comparison_items": p.ComparisonItems,
	}
}
