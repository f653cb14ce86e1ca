package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/nsflhq/nsfl-api/internal/usecase"
)

func TestWriteDoc_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDoc(context.Background(), rec, http.StatusCreated, map[string]string{"id": "m1"}, "Match created.")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	doc, ok := body["doc"].(map[string]any)
	if !ok {
		t.Fatalf("expected doc object, got %v", body["doc"])
	}
	if doc["id"] != "m1" {
		t.Fatalf("unexpected doc: %v", doc)
	}
	if body["message"] != "Match created." {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestWriteList_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	window, envelope := paginate([]int{1, 2, 3, 4, 5}, pageParams{Page: 2, Limit: 2})
	envelope.Docs = window
	writeList(context.Background(), rec, envelope)

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if body["totalDocs"] != float64(5) || body["totalPages"] != float64(3) {
		t.Fatalf("unexpected counters: %v", body)
	}
	if body["page"] != float64(2) || body["pagingCounter"] != float64(3) {
		t.Fatalf("unexpected page fields: %v", body)
	}
	if body["hasPrevPage"] != true || body["hasNextPage"] != true {
		t.Fatalf("unexpected page flags: %v", body)
	}
	if body["prevPage"] != float64(1) || body["nextPage"] != float64(3) {
		t.Fatalf("unexpected prev/next: %v", body)
	}
	docs, ok := body["docs"].([]any)
	if !ok || len(docs) != 2 {
		t.Fatalf("unexpected docs: %v", body["docs"])
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: no token", usecase.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: viewer may not delete", usecase.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: match=x", usecase.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: duplicate team", usecase.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: upstream down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("driver: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tc.err)
		if rec.Code != tc.want {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestWriteError_ErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: time %q is not a valid kickoff clock", usecase.ErrInvalidInput, "noonish"))

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	items, ok := body["errors"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one error item, got %v", body["errors"])
	}
	item := items[0].(map[string]any)
	if item["message"] == "" {
		t.Fatal("expected error message")
	}
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("pq: password authentication failed"))

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	items := body["errors"].([]any)
	item := items[0].(map[string]any)
	if item["message"] != "internal server error" {
		t.Fatalf("expected generic message, got %v", item["message"])
	}
}

func TestWriteError_FieldViolations(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &fieldError{items: []errorItem{
		{Field: "email", Message: "failed on the 'email' rule"},
		{Field: "name", Message: "failed on the 'required' rule"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	items, ok := body["errors"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected two error items, got %v", body["errors"])
	}
	first := items[0].(map[string]any)
	if first["field"] != "email" {
		t.Fatalf("unexpected first item: %v", first)
	}
}
