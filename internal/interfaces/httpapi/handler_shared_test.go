package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestParsePageParams_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/matches", nil)

	params, err := parsePageParams(req)
	if err != nil {
		t.Fatalf("parsePageParams error: %v", err)
	}
	if params.Page != 1 || params.Limit != defaultPageLimit {
		t.Fatalf("unexpected defaults: %+v", params)
	}
}

func TestParsePageParams_ClampsLimit(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/matches?page=3&limit=5000", nil)

	params, err := parsePageParams(req)
	if err != nil {
		t.Fatalf("parsePageParams error: %v", err)
	}
	if params.Page != 3 || params.Limit != maxPageLimit {
		t.Fatalf("unexpected params: %+v", params)
	}
}

func TestParsePageParams_RejectsGarbage(t *testing.T) {
	for _, target := range []string{
		"/api/matches?page=zero",
		"/api/matches?page=0",
		"/api/matches?limit=-1",
	} {
		req := httptest.NewRequest("GET", target, nil)
		if _, err := parsePageParams(req); err == nil {
			t.Fatalf("expected error for %s", target)
		}
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	window, envelope := paginate([]string{}, pageParams{Page: 1, Limit: 10})

	if len(window) != 0 {
		t.Fatalf("expected empty window, got %v", window)
	}
	if envelope.TotalDocs != 0 || envelope.TotalPages != 1 {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.HasPrevPage || envelope.HasNextPage {
		t.Fatalf("unexpected page flags: %+v", envelope)
	}
	if envelope.PrevPage != nil || envelope.NextPage != nil {
		t.Fatalf("expected nil prev/next: %+v", envelope)
	}
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	window, envelope := paginate([]string{"a", "b", "c"}, pageParams{Page: 5, Limit: 2})

	if len(window) != 0 {
		t.Fatalf("expected empty window, got %v", window)
	}
	if envelope.TotalDocs != 3 || envelope.TotalPages != 2 {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.HasNextPage {
		t.Fatal("no next page past the end")
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	window, envelope := paginate([]string{"a", "b", "c", "d", "e"}, pageParams{Page: 3, Limit: 2})

	if len(window) != 1 || window[0] != "e" {
		t.Fatalf("unexpected window: %v", window)
	}
	if envelope.HasNextPage || !envelope.HasPrevPage {
		t.Fatalf("unexpected flags: %+v", envelope)
	}
	if envelope.PagingCounter != 5 {
		t.Fatalf("unexpected pagingCounter: %d", envelope.PagingCounter)
	}
}

func TestMediaURL(t *testing.T) {
	h := &Handler{mediaBaseURL: "https://cdn.nsfl.example/media/"}

	if got := h.mediaURL("logos/tigers.png"); got != "https://cdn.nsfl.example/media/logos/tigers.png" {
		t.Fatalf("unexpected media url: %q", got)
	}
	if got := h.mediaURL("/logos/tigers.png"); got != "https://cdn.nsfl.example/media/logos/tigers.png" {
		t.Fatalf("unexpected media url with leading slash: %q", got)
	}
	if got := h.mediaURL("  "); got != "" {
		t.Fatalf("expected empty url for blank path, got %q", got)
	}
}
