package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/context/ctxhttp"
)

// GVIZ is the visualization query endpoint that returns a worksheet as a JSONP-style payload.
const GVIZ = "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json"

type Fetcher struct {
	Client *http.Client
	URL    string
}

func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{
		Client: client,
		URL:    GVIZ,
	}
}

// Fetch issues a single GET for the spreadsheet and returns the raw response body.
func (f *Fetcher) Fetch(ctx context.Context, spreadsheet string) (string, error) {
	if spreadsheet == "" {
		return "", &ConfigurationError{Reason: "missing spreadsheet ID"}
	}

	template := f.URL
	if template == "" {
		template = GVIZ
	}

	url := fmt.Sprintf(template, spreadsheet)

	response, err := ctxhttp.Get(ctx, f.Client, url)
	if err != nil {
		return "", &FetchError{Spreadsheet: spreadsheet, Err: err}
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", &FetchError{Spreadsheet: spreadsheet, Status: response.StatusCode, Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", &FetchError{
			Spreadsheet: spreadsheet,
			Status:      response.StatusCode,
			Err:         errors.New(reason(response.StatusCode)),
		}
	}

	return string(body), nil
}

func reason(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "spreadsheet not found - check the spreadsheet URL"

	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "permission denied"

	case status >= 500:
		return "service unavailable"

	default:
		return http.StatusText(status)
	}
}
