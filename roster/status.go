package roster

import (
	"fmt"
	"strconv"
)

type Status int

const (
	ApprovedByGrade Status = iota
	FinalExamRequired
	FailedByGrade
	FailedByAttendance
)

const (
	PassMark = 5.0
	Approved = 7.0
)

func (s Status) String() string {
	switch s {
	case ApprovedByGrade:
		return "Aprovado"

	case FinalExamRequired:
		return "Exame Final"

	case FailedByGrade:
		return "Reprovado por Nota"

	case FailedByAttendance:
		return "Reprovado por Falta"

	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the computed outcome for a single roster row.
type Result struct {
	Row       int
	Average   float64
	Absences  int
	Status    Status
	Secondary float64
}

// Classify returns the status for a student and the minimum final exam score needed
// for (average + exam)/2 >= 5. The exam score is 0 unless a final exam is required.
func Classify(average float64, absences int) (Status, float64) {
	switch {
	case absences > AbsenceLimit:
		return FailedByAttendance, 0

	case average < PassMark:
		return FailedByGrade, 0

	case average < Approved:
		return FinalExamRequired, round(2*PassMark - average)

	default:
		return ApprovedByGrade, 0
	}
}

// Grade classifies each row from the (order preserving) averages and absences.
func Grade(averages []float64, absences []int) ([]Result, error) {
	if len(averages) != len(absences) {
		return nil, fmt.Errorf("mismatched averages (%v) and absences (%v)", len(averages), len(absences))
	}

	results := make([]Result, 0, len(averages))
	for i := range averages {
		status, secondary := Classify(averages[i], absences[i])

		results = append(results, Result{
			Row:       FirstRow + i,
			Average:   averages[i],
			Absences:  absences[i],
			Status:    status,
			Secondary: secondary,
		})
	}

	return results, nil
}

func (r Result) SecondaryValue() string {
	return strconv.FormatFloat(r.Secondary, 'f', -1, 64)
}
