package roster

import (
	"fmt"
)

// ConfigurationError is returned when the spreadsheet URL does not identify a spreadsheet.
type ConfigurationError struct {
	URL    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid configuration - %v", e.Reason)
	}

	return fmt.Sprintf("invalid spreadsheet URL '%s' - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit'", e.URL)
}

// FetchError is returned when the roster could not be retrieved. Status is the HTTP
// status code, or 0 if no response was received.
type FetchError struct {
	Spreadsheet string
	Status      int
	Err         error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("error fetching spreadsheet %v (HTTP %v: %v)", e.Spreadsheet, e.Status, e.Err)
	}

	return fmt.Sprintf("error fetching spreadsheet %v (%v)", e.Spreadsheet, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid roster data: %v (%v)", e.Reason, e.Err)
	}

	return fmt.Sprintf("invalid roster data: %v", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CellError identifies a grade or absence cell that cannot be used in a calculation.
type CellError struct {
	Cell  string
	Value string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("invalid value '%v' in cell %v", e.Value, e.Cell)
}

type WriteError struct {
	Cell string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error updating cell %v (%v)", e.Cell, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
