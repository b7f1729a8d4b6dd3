package builder

import "errors"

// Fluent builder errors
var (
	ErrEmptyName = errors.New("meal name cannot be empty")
	ErrNoFood    = errors.New("meal must have at least one food item")
)

// FluentBuilder is the chainable alternative to the director-driven
// builders for callers that want to assemble a custom meal inline.
type FluentBuilder struct {
	name    string
	food    []string
	cutlery []string
	pkg     string
	bill    float64
}

// NewFluentBuilder starts a custom meal with the given name.
func NewFluentBuilder(name string) *FluentBuilder {
	return &FluentBuilder{name: name}
}

// Food appends food items to the meal.
func (b *FluentBuilder) Food(items ...string) *FluentBuilder {
	b.food = append(b.food, items...)
	return b
}

// Cutlery appends cutlery to the meal.
func (b *FluentBuilder) Cutlery(items ...string) *FluentBuilder {
	b.cutlery = append(b.cutlery, items...)
	return b
}

// Package sets the packaging.
func (b *FluentBuilder) Package(pkg string) *FluentBuilder {
	b.pkg = pkg
	return b
}

// Bill sets the price.
func (b *FluentBuilder) Bill(amount float64) *FluentBuilder {
	b.bill = amount
	return b
}

// Build validates the accumulated steps and returns the meal.
func (b *FluentBuilder) Build() (*Meal, error) {
	if b.name == "" {
		return nil, ErrEmptyName
	}
	if len(b.food) == 0 {
		return nil, ErrNoFood
	}
	return &Meal{
		Name:    b.name,
		Food:    b.food,
		Cutlery: b.cutlery,
		Package: b.pkg,
		Bill:    b.bill,
	}, nil
}
