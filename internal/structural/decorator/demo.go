package decorator

import (
	"context"
	"fmt"
	"io"
)

// Demo feeds valid and invalid inputs through a form whose handlers are
// wrapped in string and lowercase validators.
func Demo(ctx context.Context, w io.Writer) error {
	form := NewTextForm()

	fmt.Fprintln(w, "Attempting to input username:")
	fmt.Fprintln(w, form.InputUsername("Bob"))
	fmt.Fprintln(w, form.InputUsername(808))
	fmt.Fprintln(w, form.InputUsername("bob"))
	fmt.Fprintln(w, form.InputTeamName(2.1))

	fmt.Fprintln(w, "\nAttempting to input team name:")
	fmt.Fprintln(w, form.InputTeamName("BobRockers"))
	fmt.Fprintln(w, form.InputTeamName("bobrockers"))

	fmt.Fprintln(w, "\nAttempting to input comments:")
	fmt.Fprintln(w, form.SpecialInputComments("THIS IS ALL UPPERCASE"))
	return nil
}
