package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/gradebook/gradebook-app-sheets/roster"
)

var GradeCmd = Grade{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	dryrun: false,
	batch:  false,
}

type Grade struct {
	command
	dryrun bool
	batch  bool
}

func (cmd *Grade) Name() string {
	return "grade"
}

func (cmd *Grade) Description() string {
	return "Calculates the student averages and status and updates the Google Sheets roster"
}

func (cmd *Grade) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Grade) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] grade [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the class roster from a Google Sheets worksheet, calculates each student's average and")
	fmt.Println("  status from the grade (D:F) and absence (C) columns and writes the status and the final exam")
	fmt.Println("  grade required to pass to columns G and H, starting at row 4.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gradebook-app-sheets --debug grade --credentials "credentials.json" \`)
	fmt.Println(`                                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit"`)
	fmt.Println()
}

func (cmd *Grade) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("grade")

	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Calculates and logs the student status without updating the worksheet")
	flagset.BoolVar(&cmd.batch, "batch", cmd.batch, "Updates the worksheet with a single batch request rather than cell by cell")

	return flagset
}

func (cmd *Grade) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = cmd.debug || options.Debug

	ctx := context.Background()

	google, spreadsheet, err := cmd.connect(ctx, SHEETS)
	if err != nil {
		return err
	}

	defer google.Close()

	if cmd.debug {
		if s, err := google.spreadsheet(ctx, spreadsheet); err != nil {
			warnf("%v", err)
		} else if s.Properties != nil {
			debugf("Spreadsheet - title:%v", s.Properties.Title)
		}
	}

	fetcher := roster.NewFetcher(google.http)
	writer := roster.NewWriter(google.sheets, spreadsheet, cmd.debug)

	return cmd.grade(ctx, spreadsheet, fetcher, writer)
}

func (cmd *Grade) grade(ctx context.Context, spreadsheet string, fetcher *roster.Fetcher, writer *roster.Writer) error {
	_, results, err := compute(ctx, spreadsheet, fetcher)
	if err != nil {
		return err
	}

	queue := roster.Updates(results)

	if cmd.dryrun {
		for _, r := range results {
			infof("row %-3v  average:%-5.2f  absences:%-3v  %-20v  %v", r.Row, r.Average, r.Absences, r.Status, r.SecondaryValue())
		}

		infof("dryrun - %v students, %v cells not updated", len(results), len(queue))
		return nil
	}

	if cmd.batch {
		if err := writer.WriteBatch(ctx, queue); err != nil {
			return err
		}

		infof("Updated %v students (%v cells)", len(results), len(queue))
		return nil
	}

	summary := writer.Write(ctx, queue)

	infof("Updated %v students  cells:%v  updated:%v  failed:%v", len(results), summary.Attempted, summary.Updated, len(summary.Errors))

	if len(summary.Errors) > 0 {
		errorf("%v of %v cells could not be updated", len(summary.Errors), summary.Attempted)
	}

	return nil
}

// compute fetches and parses the roster and classifies each student. Any error aborts
// before anything is written.
func compute(ctx context.Context, spreadsheet string, fetcher *roster.Fetcher) (roster.Roster, []roster.Result, error) {
	payload, err := fetcher.Fetch(ctx, spreadsheet)
	if err != nil {
		return nil, nil, err
	}

	students, err := roster.Parse(payload)
	if err != nil {
		return nil, nil, err
	}

	infof("Retrieved %v students", len(students))

	averages, err := roster.Average(students)
	if err != nil {
		return nil, nil, fmt.Errorf("error calculating averages (%w)", err)
	}

	absences, err := roster.Absences(students)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving absences (%w)", err)
	}

	results, err := roster.Grade(averages, absences)
	if err != nil {
		return nil, nil, err
	}

	return students, results, nil
}
