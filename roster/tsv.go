package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MakeTSV writes the roster and computed results as a tab separated report.
func MakeTSV(f io.Writer, roster Roster, results []Result) error {
	if len(roster) != len(results) {
		return fmt.Errorf("mismatched roster (%v rows) and results (%v rows)", len(roster), len(results))
	}

	header := []string{"Row", "Absences"}
	for i := 1; i <= GradeCount; i++ {
		header = append(header, fmt.Sprintf("Grade %d", i))
	}
	header = append(header, "Average", "Status", "Final Exam")

	// ... records
	records := [][]string{}
	for i, row := range roster {
		r := results[i]
		record := []string{
			fmt.Sprintf("%v", r.Row),
			fmt.Sprintf("%v", r.Absences),
		}

		for ix := GradeColumn; ix < GradeColumn+GradeCount; ix++ {
			record = append(record, clean(row.Cell(ix).String()))
		}

		record = append(record,
			strconv.FormatFloat(r.Average, 'f', 2, 64),
			r.Status.String(),
			r.SecondaryValue())

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
