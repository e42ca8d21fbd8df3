package roster

import (
	"strings"
)

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL, i.e. the path
// segment following '/d/' in https://docs.google.com/spreadsheets/d/<ID>/edit.
func SpreadsheetID(url string) (string, error) {
	parts := strings.Split(strings.TrimSpace(url), "/")
	if len(parts) < 6 {
		return "", &ConfigurationError{URL: url}
	}

	id := strings.TrimSpace(parts[5])
	if id == "" {
		return "", &ConfigurationError{URL: url}
	}

	return id, nil
}
