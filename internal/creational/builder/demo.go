package builder

import (
	"context"
	"io"
)

// Demo drives two concrete builders through the same director, then
// assembles a custom meal with the fluent builder.
func Demo(ctx context.Context, w io.Writer) error {
	director := NewDirector()

	director.SetBuilder(&TakeoutSpecialBuilder{})
	director.Build().PrettyPrint(w)

	director.SetBuilder(&CheeseBurgerBuilder{})
	director.Build().PrettyPrint(w)

	custom, err := NewFluentBuilder("Breakfast Combo").
		Food("Pancakes", "Maple Syrup").
		Cutlery("Fork", "Knife").
		Package("Tray").
		Bill(6.25).
		Build()
	if err != nil {
		return err
	}
	custom.PrettyPrint(w)
	return nil
}
