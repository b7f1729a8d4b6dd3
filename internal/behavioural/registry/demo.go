package registry

import (
	"context"
	"fmt"
	"io"
)

// Demo builds an error-kind registry, prints it with only the base error
// registered, then registers two more kinds and prints it again.
func Demo(ctx context.Context, w io.Writer) error {
	reg := NewRegistry()
	if err := reg.Register(&Kind{Code: 999, Name: "BaseError"}); err != nil {
		return err
	}

	fmt.Fprintln(w, "Registry with only the BaseError implemented:")
	reg.Print(w)

	if err := reg.Register(&Kind{Code: 400, Name: "ClientError"}); err != nil {
		return err
	}
	if err := reg.Register(&Kind{Code: 500, Name: "ServerError"}); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Registry with client and server errors implemented:")
	reg.Print(w)
	return nil
}
