package blocks

import (
	"fmt"
	"strings"

	"github.com/glowlabs/pagegen/app/product"
)

// usageFrequency is a fixed reporting policy, not derived from the record.
const usageFrequency = "Daily"

// Usage derives the usage fragment. Steps are the non-empty lines of the
// instructions; instructions without newlines become a single step.
func Usage(rec *product.Record) Fragment {
	steps := make([]string, 0)
	for _, line := range strings.Split(rec.UsageInstructions, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			steps = append(steps, s)
		}
	}
	if len(steps) == 0 && rec.UsageInstructions != "" {
		steps = append(steps, rec.UsageInstructions)
	}

	timing := "As directed"
	if strings.Contains(strings.ToLower(rec.UsageInstructions), "morning") {
		timing = "Morning before sunscreen"
	}

	return Fragment{
		Type: TypeUsage,
		Content: map[string]any{
			"title":              fmt.Sprintf("How to Use %s", rec.Name),
			"instructions":       rec.UsageInstructions,
			"steps":              steps,
			"frequency":          usageFrequency,
			"application_timing": timing,
		},
		SourceProductName: rec.Name,
	}
}
