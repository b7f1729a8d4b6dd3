// Package prototype demonstrates the prototype pattern: one costly-to-build
// report card per year (the breeder) is deep-copied for each student instead
// of rebuilt from scratch.
package prototype

import (
	"fmt"

	"github.com/google/uuid"
)

// ReportCard is the prototype. The breeder for a year carries the general
// report shared by every student of that year; clones stamp in student data.
type ReportCard struct {
	ID        string
	Year      int
	Report    []string
	StudentID int
}

// NewReportCard builds the breeder for a year. Building the general report
// is presumed expensive, so this should run once per year.
func NewReportCard(year int) *ReportCard {
	rc := &ReportCard{ID: uuid.NewString(), Year: year}
	rc.buildGeneralReport()
	return rc
}

// buildGeneralReport stands in for the costly universal-data query the
// pattern exists to avoid repeating.
func (rc *ReportCard) buildGeneralReport() {
	rc.Report = []string{
		fmt.Sprintf("District curriculum summary %d", rc.Year),
		fmt.Sprintf("Grading scale %d", rc.Year),
	}
}

// Clone deep-copies the card into a brand new object with its own identity.
func (rc *ReportCard) Clone() *ReportCard {
	clone := &ReportCard{
		ID:        uuid.NewString(),
		Year:      rc.Year,
		Report:    append([]string(nil), rc.Report...),
		StudentID: rc.StudentID,
	}
	return clone
}

// SetStudent stamps student-specific data onto a clone. Only clones of the
// breeders should call this.
func (rc *ReportCard) SetStudent(studentID int) {
	rc.StudentID = studentID
	rc.Report = append(rc.Report, fmt.Sprintf("Marks for student %d", studentID))
}

func (rc *ReportCard) String() string {
	return fmt.Sprintf("<ReportCard: student_id: %d, year: %d>", rc.StudentID, rc.Year)
}

// ReportFactory holds one breeder per year and clones it on demand.
type ReportFactory struct {
	breeders map[int]*ReportCard
}

// NewReportFactory creates a factory with no breeders yet; they are built
// lazily on first use of each year.
func NewReportFactory() *ReportFactory {
	return &ReportFactory{breeders: make(map[int]*ReportCard)}
}

// Make clones the breeder for the year (building it first if this is the
// year's first card) and stamps the clone with the student id.
func (f *ReportFactory) Make(studentID, year int) *ReportCard {
	breeder, ok := f.breeders[year]
	if !ok {
		breeder = NewReportCard(year)
		f.breeders[year] = breeder
	}

	clone := breeder.Clone()
	clone.SetStudent(studentID)
	return clone
}

// BreederCount reports how many breeders have been built so far.
func (f *ReportFactory) BreederCount() int {
	return len(f.breeders)
}

// Student owns one report card per enrolled year, cloned from the factory's
// breeders at construction time.
type Student struct {
	ID          int
	Years       []int
	ReportCards []*ReportCard
}

// NewStudent creates a student and generates their report cards for every
// enrolled year.
func NewStudent(id int, years []int, factory *ReportFactory) *Student {
	s := &Student{ID: id, Years: years}
	for _, year := range years {
		s.ReportCards = append(s.ReportCards, factory.Make(id, year))
	}
	return s
}
