package blocks

// Type identifies the kind of content a fragment carries.
type Type string

const (
	TypeBenefits   Type = "benefits"
	TypeUsage      Type = "usage"
	TypeSafety     Type = "safety"
	TypeIngredient Type = "ingredient"
	TypePrice      Type = "price"
	TypeComparison Type = "comparison"
)

// Fragment is the output of a single logic block: a named bundle of derived
// values keyed by semantic field name. Fragments are immutable once produced
// and never depend on one another.
type Fragment struct {
	Type              Type
	Content           map[string]any
	SourceProductName string
}

// Map is the fragment set handed to the page assemblers, keyed by block type.
type Map map[Type]Fragment
