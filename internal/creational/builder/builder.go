// Package builder demonstrates the builder pattern: a director drives any
// meal builder through the same fixed sequence of build steps, and each
// concrete builder assembles a different product.
package builder

import (
	"fmt"
	"io"
	"strings"
)

// MealBuilder assembles one kind of meal step by step. The director calls
// the steps in a fixed order and collects the product at the end.
type MealBuilder interface {
	NewMeal()
	BuildFood()
	BuildCutlery()
	BuildPackage()
	BuildBill()
	Meal() *Meal
}

// Director runs any MealBuilder through the full build sequence.
type Director struct {
	builder MealBuilder
}

// NewDirector creates a director with no builder attached.
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder swaps in the concrete builder to drive.
func (d *Director) SetBuilder(b MealBuilder) {
	d.builder = b
}

// Build runs the build steps in order and returns the finished meal.
func (d *Director) Build() *Meal {
	d.builder.NewMeal()
	d.builder.BuildFood()
	d.builder.BuildCutlery()
	d.builder.BuildPackage()
	d.builder.BuildBill()
	return d.builder.Meal()
}

// Meal is the product every builder assembles.
type Meal struct {
	Name    string
	Food    []string
	Cutlery []string
	Package string
	Bill    float64
}

func (m *Meal) String() string {
	return fmt.Sprintf("<Meal: %s>", m.Name)
}

// PrettyPrint writes the meal as an aligned order summary.
func (m *Meal) PrettyPrint(w io.Writer) {
	fmt.Fprintf(w, "Order Type : %s\n", m.Name)
	fmt.Fprintf(w, "Food       : %s\n", strings.Join(m.Food, ", "))
	fmt.Fprintf(w, "Cutlery    : %s\n", strings.Join(m.Cutlery, ", "))
	fmt.Fprintf(w, "Package    : %s\n", m.Package)
	fmt.Fprintf(w, "Bill       : %.2f\n", m.Bill)
	fmt.Fprintln(w)
}

// TakeoutSpecialBuilder assembles the takeout special.
type TakeoutSpecialBuilder struct {
	meal *Meal
}

func (b *TakeoutSpecialBuilder) NewMeal()      { b.meal = &Meal{Name: "Takeout Special"} }
func (b *TakeoutSpecialBuilder) BuildFood()    { b.meal.Food = []string{"Egg Noodles", "Fortune Cookie"} }
func (b *TakeoutSpecialBuilder) BuildCutlery() { b.meal.Cutlery = []string{"Chopsticks", "Fork"} }
func (b *TakeoutSpecialBuilder) BuildPackage() { b.meal.Package = "Takeout Box" }
func (b *TakeoutSpecialBuilder) BuildBill()    { b.meal.Bill = 10.50 }
func (b *TakeoutSpecialBuilder) Meal() *Meal   { return b.meal }

// CheeseBurgerBuilder assembles the cheese burger.
type CheeseBurgerBuilder struct {
	meal *Meal
}

func (b *CheeseBurgerBuilder) NewMeal()      { b.meal = &Meal{Name: "Cheese Burger"} }
func (b *CheeseBurgerBuilder) BuildFood()    { b.meal.Food = []string{"Cheese", "Patty", "Buns"} }
func (b *CheeseBurgerBuilder) BuildCutlery() { b.meal.Cutlery = []string{"Butter Knife"} }
func (b *CheeseBurgerBuilder) BuildPackage() { b.meal.Package = "Paper Bag" }
func (b *CheeseBurgerBuilder) BuildBill()    { b.meal.Bill = 8.00 }
func (b *CheeseBurgerBuilder) Meal() *Meal   { return b.meal }
