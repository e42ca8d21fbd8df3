package roster

import (
	"math"
)

// Average returns the mean of the three grade cells of each row, scaled from 0-100
// to 0-10 and rounded to 2 decimal places. Empty grade cells count as zero.
func Average(roster Roster) ([]float64, error) {
	averages := make([]float64, 0, len(roster))

	for i, row := range roster {
		sum := 0.0
		for ix := GradeColumn; ix < GradeColumn+GradeCount; ix++ {
			cell := row.Cell(ix)
			v, ok := cell.value()
			if !ok {
				return nil, &CellError{Cell: cellRef(column(ix), FirstRow+i), Value: cell.String()}
			}

			sum += v
		}

		averages = append(averages, round(sum/GradeCount/10))
	}

	return averages, nil
}

// Absences returns the absence count of each row. Empty absence cells count as zero and
// a count can not exceed the number of sessions.
func Absences(roster Roster) ([]int, error) {
	absences := make([]int, 0, len(roster))

	for i, row := range roster {
		cell := row.Cell(AbsenceColumn)
		v, ok := cell.value()
		if !ok || v < 0 || v > Sessions || v != math.Trunc(v) {
			return nil, &CellError{Cell: cellRef(column(AbsenceColumn), FirstRow+i), Value: cell.String()}
		}

		absences = append(absences, int(v))
	}

	return absences, nil
}

// round rounds half away from zero to 2 decimal places.
func round(v float64) float64 {
	return math.Round(v*100) / 100
}
