package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		debug:       false,
	},
}

// Authorise runs the OAuth2 consent flow for OAuth client credentials and caches
// the token for use by the other commands.
type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises gradebook-app-sheets to access a Google Sheets worksheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises gradebook-app-sheets to access Google Sheets using OAuth client credentials and caches")
	fmt.Println("  the access token in the tokens directory. Service account credentials do not need to be authorised.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gradebook-app-sheets authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = cmd.debug || options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if err := authenticate(context.Background(), cmd.credentials, SHEETS, cmd.tokenDir()); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}

func authenticate(ctx context.Context, credentials, scope, tokens string) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	if isServiceAccount(b) {
		infof("%v is a service account key - no authorisation required", credentials)
		return nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return err
	}

	token, err := getTokenFromWeb(ctx, config)
	if err != nil {
		return err
	}

	return saveToken(tokenFile(credentials, tokens), token)
}
