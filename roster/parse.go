package roster

import (
	"encoding/json"
	"fmt"
	"strings"
)

type response struct {
	Status string `json:"status"`
	Errors []struct {
		Reason   string `json:"reason"`
		Message  string `json:"message"`
		Detailed string `json:"detailed_message"`
	} `json:"errors"`
	Table *struct {
		Rows *[]struct {
			C []*struct {
				V json.RawMessage `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

// Parse unwraps a google.visualization.Query.setResponse(...) payload and converts
// the table rows to a Roster. Null and missing cells are returned as Empty.
func Parse(payload string) (Roster, error) {
	start := strings.Index(payload, "(")
	end := strings.LastIndex(payload, ")")
	if start < 0 || end < 0 || end <= start {
		return nil, &ParseError{Reason: "missing setResponse(...) wrapper"}
	}

	var rs response
	if err := json.Unmarshal([]byte(payload[start+1:end]), &rs); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}

	if rs.Status == "error" {
		reasons := []string{}
		for _, e := range rs.Errors {
			if e.Detailed != "" {
				reasons = append(reasons, e.Detailed)
			} else {
				reasons = append(reasons, e.Message)
			}
		}

		return nil, &ParseError{Reason: fmt.Sprintf("query failed: %v", strings.Join(reasons, "; "))}
	}

	if rs.Table == nil {
		return nil, &ParseError{Reason: "missing 'table'"}
	}

	if rs.Table.Rows == nil {
		return nil, &ParseError{Reason: "missing 'rows'"}
	}

	rows := *rs.Table.Rows
	roster := make(Roster, 0, len(rows))
	for i, r := range rows {
		row := make(Row, len(r.C))
		for j, c := range r.C {
			if c == nil {
				continue
			}

			cell, err := decode(c.V)
			if err != nil {
				return nil, &ParseError{Reason: fmt.Sprintf("row %v, column %v", i, j), Err: err}
			}

			row[j] = cell
		}

		roster = append(roster, row)
	}

	return roster, nil
}

func decode(v json.RawMessage) (Cell, error) {
	if len(v) == 0 {
		return Cell{}, nil
	}

	var value any
	if err := json.Unmarshal(v, &value); err != nil {
		return Cell{}, err
	}

	switch u := value.(type) {
	case nil:
		return Cell{}, nil

	case float64:
		return NumberCell(u), nil

	case string:
		return TextCell(u), nil

	case bool:
		return TextCell(fmt.Sprintf("%v", u)), nil

	default:
		return TextCell(string(v)), nil
	}
}
