package prototype

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClone_IndependentObject(t *testing.T) {
	breeder := NewReportCard(2015)
	clone := breeder.Clone()

	require.NotSame(t, breeder, clone)
	require.NotEqual(t, breeder.ID, clone.ID)
	require.Equal(t, breeder.Year, clone.Year)
	require.Equal(t, breeder.Report, clone.Report)

	// Mutating the clone leaves the breeder untouched.
	clone.SetStudent(1234)
	require.Equal(t, 0, breeder.StudentID)
	require.NotContains(t, breeder.Report, "Marks for student 1234")
}

func TestFactory_LazyBreederPerYear(t *testing.T) {
	factory := NewReportFactory()
	require.Equal(t, 0, factory.BreederCount())

	factory.Make(1234, 2015)
	require.Equal(t, 1, factory.BreederCount())

	// Same year reuses the breeder.
	factory.Make(4321, 2015)
	require.Equal(t, 1, factory.BreederCount())

	factory.Make(4321, 2014)
	require.Equal(t, 2, factory.BreederCount())
}

func TestFactory_CloneStampedWithStudent(t *testing.T) {
	factory := NewReportFactory()

	card := factory.Make(1234, 2016)
	require.Equal(t, 1234, card.StudentID)
	require.Equal(t, 2016, card.Year)
	require.Equal(t, "<ReportCard: student_id: 1234, year: 2016>", card.String())
}

func TestNewStudent_OneCardPerYear(t *testing.T) {
	factory := NewReportFactory()
	student := NewStudent(1234, []int{2015, 2016}, factory)

	require.Len(t, student.ReportCards, 2)
	require.Equal(t, 2015, student.ReportCards[0].Year)
	require.Equal(t, 2016, student.ReportCards[1].Year)
	for _, card := range student.ReportCards {
		require.Equal(t, 1234, card.StudentID)
	}
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "[<ReportCard: student_id: 1234, year: 2015>, <ReportCard: student_id: 1234, year: 2016>]")
	require.Contains(t, out, "[<ReportCard: student_id: 4321, year: 2014>, <ReportCard: student_id: 4321, year: 2015>]")
	require.Contains(t, out, "Breeders built for 3 distinct years: true")
}
