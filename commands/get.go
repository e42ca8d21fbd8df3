package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gradebook/gradebook-app-sheets/roster"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the class roster from a Google Sheets worksheet and stores the calculated status to a local file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets class roster and writes the calculated averages and status to a TSV file.")
	fmt.Println("  The worksheet is not updated.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gradebook-app-sheets --debug get --credentials "credentials.json" \`)
	fmt.Println(`                                     --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit" \`)
	fmt.Println(`                                     --file "roster.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = cmd.debug || options.Debug

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	ctx := context.Background()

	google, spreadsheet, err := cmd.connect(ctx, SHEETS)
	if err != nil {
		return err
	}

	defer google.Close()

	return cmd.get(ctx, spreadsheet, roster.NewFetcher(google.http))
}

func (cmd *Get) get(ctx context.Context, spreadsheet string, fetcher *roster.Fetcher) error {
	students, results, err := compute(ctx, spreadsheet, fetcher)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(os.TempDir(), "roster")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := roster.MakeTSV(tmp, students, results); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved roster to file %s", cmd.file)

	return nil
}
