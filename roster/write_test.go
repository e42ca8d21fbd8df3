package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type stub struct {
	sync.Mutex
	updates []Update
	batches [][]Update
	options []string
	fail    map[string]bool
}

func (s *stub) ServeHTTP(w http.ResponseWriter, rq *http.Request) {
	s.Lock()
	defer s.Unlock()

	var vr sheets.ValueRange

	switch {
	case rq.Method == http.MethodPut && strings.HasPrefix(rq.URL.Path, "/v4/spreadsheets/ID/values/"):
		cell := strings.TrimPrefix(rq.URL.Path, "/v4/spreadsheets/ID/values/")
		if err := json.NewDecoder(rq.Body).Decode(&vr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.updates = append(s.updates, Update{Cell: cell, Value: fmt.Sprintf("%v", vr.Values[0][0])})
		s.options = append(s.options, rq.URL.Query().Get("valueInputOption"))

		if s.fail[cell] {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"spreadsheetId":"ID","updatedRange":"Sheet1!%v","updatedCells":1}`, cell)

	case rq.Method == http.MethodPost && rq.URL.Path == "/v4/spreadsheets/ID/values:batchUpdate":
		var batch sheets.BatchUpdateValuesRequest
		if err := json.NewDecoder(rq.Body).Decode(&batch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updates := []Update{}
		for _, d := range batch.Data {
			updates = append(updates, Update{Cell: d.Range, Value: fmt.Sprintf("%v", d.Values[0][0])})
		}

		s.batches = append(s.batches, updates)
		s.options = append(s.options, batch.ValueInputOption)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"spreadsheetId":"ID","totalUpdatedCells":%v}`, len(updates))

	default:
		http.NotFound(w, rq)
	}
}

func newWriter(t *testing.T, s *stub) *Writer {
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	google, err := sheets.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Unexpected error creating Sheets service (%v)", err)
	}

	return NewWriter(google, "ID", false)
}

var results = []Result{
	{Row: 4, Average: 5.3, Absences: 8, Status: FinalExamRequired, Secondary: 4.7},
	{Row: 5, Average: 9.1, Absences: 18, Status: FailedByAttendance},
	{Row: 6, Average: 7, Absences: 15, Status: ApprovedByGrade},
	{Row: 7, Average: 2.25, Absences: 0, Status: FailedByGrade},
}

func TestUpdates(t *testing.T) {
	expected := []Update{
		{"G4", "Exame Final"}, {"H4", "4.7"},
		{"G5", "Reprovado por Falta"}, {"H5", "0"},
		{"G6", "Aprovado"}, {"H6", "0"},
		{"G7", "Reprovado por Nota"}, {"H7", "0"},
	}

	queue := Updates(results)

	if !reflect.DeepEqual(queue, expected) {
		t.Errorf("Incorrect update queue\n   expected: %v\n   got:      %v\n", expected, queue)
	}
}

func TestWrite(t *testing.T) {
	s := stub{}
	w := newWriter(t, &s)

	queue := Updates(results)
	summary := w.Write(context.Background(), queue)

	if summary.Attempted != 8 || summary.Updated != 8 || len(summary.Errors) != 0 {
		t.Errorf("Incorrect summary - expected:8 attempted, 8 updated, 0 errors, got:%+v", summary)
	}

	if !reflect.DeepEqual(s.updates, queue) {
		t.Errorf("Incorrect updates\n   expected: %v\n   got:      %v\n", queue, s.updates)
	}

	for _, option := range s.options {
		if option != "USER_ENTERED" {
			t.Errorf("Incorrect valueInputOption - expected:%v, got:%v", "USER_ENTERED", option)
		}
	}
}

func TestWriteWithFailedCell(t *testing.T) {
	s := stub{
		fail: map[string]bool{"G5": true},
	}

	w := newWriter(t, &s)

	queue := Updates(results)
	summary := w.Write(context.Background(), queue)

	if summary.Attempted != 8 || summary.Updated != 7 || len(summary.Errors) != 1 {
		t.Fatalf("Incorrect summary - expected:8 attempted, 7 updated, 1 error, got:%+v", summary)
	}

	var werr *WriteError
	if !errors.As(summary.Errors[0], &werr) {
		t.Fatalf("Expected WriteError, got %v", summary.Errors[0])
	} else if werr.Cell != "G5" {
		t.Errorf("Incorrect failed cell - expected:%v, got:%v", "G5", werr.Cell)
	}

	if !reflect.DeepEqual(s.updates, queue) {
		t.Errorf("Incorrect updates\n   expected: %v\n   got:      %v\n", queue, s.updates)
	}
}

func TestWriteWithEmptyQueue(t *testing.T) {
	s := stub{}
	w := newWriter(t, &s)

	summary := w.Write(context.Background(), Updates(nil))

	if summary.Attempted != 0 || len(s.updates) != 0 {
		t.Errorf("Expected no updates, got %+v", summary)
	}
}

func TestWriteBatch(t *testing.T) {
	s := stub{}
	w := newWriter(t, &s)

	queue := Updates(results)
	if err := w.WriteBatch(context.Background(), queue); err != nil {
		t.Fatalf("Unexpected error returned from WriteBatch (%v)", err)
	}

	if len(s.updates) != 0 {
		t.Errorf("Expected no single cell updates, got %v", s.updates)
	}

	if len(s.batches) != 1 {
		t.Fatalf("Expected 1 batch update, got %v", len(s.batches))
	}

	if !reflect.DeepEqual(s.batches[0], queue) {
		t.Errorf("Incorrect batch update\n   expected: %v\n   got:      %v\n", queue, s.batches[0])
	}

	if len(s.options) != 1 || s.options[0] != "USER_ENTERED" {
		t.Errorf("Incorrect valueInputOption - expected:%v, got:%v", "USER_ENTERED", s.options)
	}
}
