package prototype

import (
	"context"
	"fmt"
	"io"
)

// Demo enrolls two students across overlapping years; the factory builds
// one breeder per distinct year and clones it for every card.
func Demo(ctx context.Context, w io.Writer) error {
	factory := NewReportFactory()

	student1234 := NewStudent(1234, []int{2015, 2016}, factory)
	student4321 := NewStudent(4321, []int{2014, 2015}, factory)

	fmt.Fprintln(w, cardList(student1234.ReportCards))
	fmt.Fprintln(w, cardList(student4321.ReportCards))
	fmt.Fprintf(w, "Breeders built for 3 distinct years: %v\n", factory.BreederCount() == 3)
	return nil
}

func cardList(cards []*ReportCard) string {
	out := "["
	for i, card := range cards {
		if i > 0 {
			out += ", "
		}
		out += card.String()
	}
	return out + "]"
}
