package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// client is the authorised Google handle shared by the fetch and write-back. It
// is created once per command and released with Close.
type client struct {
	http   *http.Client
	sheets *sheets.Service
}

func newClient(ctx context.Context, credentials, scope, tokens string) (*client, error) {
	c, err := authorize(ctx, credentials, scope, tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(c))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &client{
		http:   c,
		sheets: service,
	}, nil
}

func (c *client) Close() {
	if c != nil && c.http != nil {
		c.http.CloseIdleConnections()
	}
}

func (c *client) spreadsheet(ctx context.Context, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := c.sheets.Spreadsheets.Get(id).Fields("spreadsheetId", "properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	return spreadsheet, nil
}

// authorize returns an HTTP client for the credentials file. Service account keys are
// used as is, OAuth client credentials use the cached token in the tokens directory,
// requesting a new token if there isn't one.
func authorize(ctx context.Context, credentials, scope, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if isServiceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scope)
		if err != nil {
			return nil, err
		}

		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	file := tokenFile(credentials, tokens)
	token, err := tokenFromFile(file)
	if err != nil {
		if token, err = getTokenFromWeb(ctx, config); err != nil {
			return nil, err
		} else if err := saveToken(file, token); err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, token), nil
}

func isServiceAccount(credentials []byte) bool {
	key := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(credentials, &key); err != nil {
		return false
	}

	return key.Type == "service_account"
}

func tokenFile(credentials, tokens string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(tokens, fmt.Sprintf("%s.sheets", name))
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	infof("Saving credential file to: %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
