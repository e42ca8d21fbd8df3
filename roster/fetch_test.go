package roster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		requests++

		if rq.Method != http.MethodGet {
			t.Errorf("Incorrect request method - expected:%v, got:%v", http.MethodGet, rq.Method)
		}

		if rq.URL.Path != "/spreadsheets/d/ID/gviz/tq" || rq.URL.Query().Get("tqx") != "out:json" {
			t.Errorf("Incorrect request URL %v", rq.URL)
		}

		fmt.Fprint(w, payload)
	}))

	defer srv.Close()

	fetcher := Fetcher{
		Client: srv.Client(),
		URL:    srv.URL + "/spreadsheets/d/%s/gviz/tq?tqx=out:json",
	}

	body, err := fetcher.Fetch(context.Background(), "ID")
	if err != nil {
		t.Fatalf("Unexpected error returned from Fetch (%v)", err)
	}

	if body != payload {
		t.Errorf("Incorrect response body\n   expected: %v\n   got:      %v\n", payload, body)
	}

	if requests != 1 {
		t.Errorf("Expected exactly one request, got %v", requests)
	}
}

func TestFetchWithHTTPError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
			http.Error(w, "oops", status)
		}))

		fetcher := Fetcher{
			Client: srv.Client(),
			URL:    srv.URL + "/spreadsheets/d/%s/gviz/tq?tqx=out:json",
		}

		_, err := fetcher.Fetch(context.Background(), "ID")

		var ferr *FetchError
		if !errors.As(err, &ferr) {
			t.Errorf("Expected FetchError for HTTP %v, got %v", status, err)
		} else if ferr.Status != status {
			t.Errorf("Incorrect FetchError status - expected:%v, got:%v", status, ferr.Status)
		}

		srv.Close()
	}
}

func TestFetchWithUnavailableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {}))
	url := srv.URL
	srv.Close()

	fetcher := Fetcher{
		Client: http.DefaultClient,
		URL:    url + "/spreadsheets/d/%s/gviz/tq?tqx=out:json",
	}

	_, err := fetcher.Fetch(context.Background(), "ID")

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FetchError, got %v", err)
	} else if ferr.Status != 0 {
		t.Errorf("Incorrect FetchError status - expected:%v, got:%v", 0, ferr.Status)
	}
}

func TestFetchWithoutSpreadsheetID(t *testing.T) {
	fetcher := NewFetcher(http.DefaultClient)

	_, err := fetcher.Fetch(context.Background(), "")

	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}

	if msg := cerr.Error(); msg != "invalid configuration - missing spreadsheet ID" {
		t.Errorf("Incorrect error message - expected:%v, got:%v", "invalid configuration - missing spreadsheet ID", msg)
	}
}
