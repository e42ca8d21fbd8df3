package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/gradebook/gradebook-app-sheets/roster"
)

const APP = "gradebook-app-sheets"
const VERSION = "v0.1.0"

type Options struct {
	Debug bool
}

type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

// environment holds the GRADEBOOK_xxx environment variable overrides for the
// command defaults. Command line flags take precedence.
// NB: no envconfig tags - a tag also matches the unprefixed variable (e.g. URL).
type environment struct {
	Workdir     string
	Credentials string
	Tokens      string
	URL         string
	Debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	if err := cmd.environment(); err != nil {
		warnf("invalid environment (%v)", err)
	}

	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, reports, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file (service account key or OAuth client)")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the cached OAuth tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")

	return flagset
}

func (cmd *command) environment() error {
	var env environment
	if err := envconfig.Process("gradebook", &env); err != nil {
		return err
	}

	if env.Workdir != "" {
		cmd.workdir = env.Workdir
	}

	if env.Credentials != "" {
		cmd.credentials = env.Credentials
	}

	if env.Tokens != "" {
		cmd.tokens = env.Tokens
	}

	if env.URL != "" {
		cmd.url = env.URL
	}

	cmd.debug = cmd.debug || env.Debug

	return nil
}

func (cmd *command) validate() error {
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	return nil
}

func (cmd *command) tokenDir() string {
	if cmd.tokens != "" {
		return cmd.tokens
	}

	return filepath.Join(cmd.workdir, ".google")
}

// connect validates the options, extracts the spreadsheet ID and creates the
// authorised Google client. The caller is responsible for closing the client.
func (cmd *command) connect(ctx context.Context, scope string) (*client, string, error) {
	if err := cmd.validate(); err != nil {
		return nil, "", err
	}

	spreadsheet, err := roster.SpreadsheetID(cmd.url)
	if err != nil {
		return nil, "", err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", spreadsheet)
	}

	google, err := newClient(ctx, cmd.credentials, scope, cmd.tokenDir())
	if err != nil {
		return nil, "", err
	}

	return google, spreadsheet, nil
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

func errorf(format string, args ...any) {
	log.Printf("%-5s %s", "ERROR", fmt.Sprintf(format, args...))
}
