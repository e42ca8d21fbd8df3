package roster

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

const USER_ENTERED = "USER_ENTERED"

// Update is a single queued cell write.
type Update struct {
	Cell  string
	Value string
}

type Summary struct {
	Attempted int
	Updated   int
	Errors    []error
}

// Writer writes the computed results back to the spreadsheet.
type Writer struct {
	google      *sheets.Service
	spreadsheet string
	debug       bool
}

func NewWriter(google *sheets.Service, spreadsheet string, debug bool) *Writer {
	return &Writer{
		google:      google,
		spreadsheet: spreadsheet,
		debug:       debug,
	}
}

// Updates returns the write queue for the results: the status cell and then the
// secondary value cell for each row, in row order.
func Updates(results []Result) []Update {
	queue := make([]Update, 0, 2*len(results))

	for _, r := range results {
		queue = append(queue,
			Update{Cell: cellRef(StatusColumn, r.Row), Value: r.Status.String()},
			Update{Cell: cellRef(SecondaryColumn, r.Row), Value: r.SecondaryValue()})
	}

	return queue
}

// Write drains the queue one cell at a time. A failed update is logged and recorded
// in the summary and does not stop the remaining updates.
func (w *Writer) Write(ctx context.Context, queue []Update) Summary {
	summary := Summary{}

	for _, u := range queue {
		summary.Attempted++

		vr := sheets.ValueRange{
			Values: [][]any{{u.Value}},
		}

		response, err := w.google.Spreadsheets.Values.Update(w.spreadsheet, u.Cell, &vr).
			ValueInputOption(USER_ENTERED).
			Context(ctx).
			Do()

		if err != nil {
			err = &WriteError{Cell: u.Cell, Err: err}
			summary.Errors = append(summary.Errors, err)
			log.Printf("%-5s %v", "ERROR", describe(err))
			continue
		}

		summary.Updated++

		if w.debug {
			log.Printf("%-5s updated %v: '%v' (%v cells)", "DEBUG", response.UpdatedRange, u.Value, response.UpdatedCells)
		}
	}

	return summary
}

// WriteBatch sends the whole queue as a single batchUpdate request. Either every
// cell is updated or none are.
func (w *Writer) WriteBatch(ctx context.Context, queue []Update) error {
	if len(queue) == 0 {
		return nil
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: USER_ENTERED,
		Data:             []*sheets.ValueRange{},
	}

	for _, u := range queue {
		rq.Data = append(rq.Data, &sheets.ValueRange{
			Range:  u.Cell,
			Values: [][]any{{u.Value}},
		})
	}

	response, err := w.google.Spreadsheets.Values.BatchUpdate(w.spreadsheet, &rq).Context(ctx).Do()
	if err != nil {
		return &WriteError{Cell: queue[0].Cell + ":" + queue[len(queue)-1].Cell, Err: err}
	}

	if w.debug {
		log.Printf("%-5s batch updated %v cells", "DEBUG", response.TotalUpdatedCells)
	}

	return nil
}

func describe(err error) string {
	var werr *WriteError
	var gerr *googleapi.Error

	if errors.As(err, &werr) && errors.As(err, &gerr) {
		return fmt.Sprintf("error updating cell %v (HTTP %v: %v)", werr.Cell, gerr.Code, gerr.Message)
	}

	return err.Error()
}
