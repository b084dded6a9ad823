package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEndpointFor(t *testing.T) {
	got := EndpointFor("abc123", "2024-01-01")
	want := "https://abc123.api.sanity.io/v2024-01-01"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProductContentDecodesResult(t *testing.T) {
	var gotPath, gotHandle, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHandle = r.URL.Query().Get("$productHandle")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"result": {
			"description": {"productHandle": "night-serum", "description": "Restores while you sleep."},
			"faqs": {"productHandle": "night-serum", "faqs": [{"question": "Vegan?", "answer": "Yes."}]}
		}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "production", "cms-token", srv.Client())
	content, err := client.ProductContent(context.Background(), "night-serum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/data/query/production" {
		t.Fatalf("bad query path %q", gotPath)
	}
	// GROQ string params arrive quoted.
	if gotHandle != `"night-serum"` {
		t.Fatalf("bad handle param %q", gotHandle)
	}
	if gotAuth != "Bearer cms-token" {
		t.Fatalf("bad auth header %q", gotAuth)
	}
	if content.Description == nil || content.Description.Description != "Restores while you sleep." {
		t.Fatalf("description not decoded: %+v", content.Description)
	}
	if content.FAQs == nil || len(content.FAQs.FAQs) != 1 || content.FAQs.FAQs[0].Question != "Vegan?" {
		t.Fatalf("faqs not decoded: %+v", content.FAQs)
	}
	if content.Gallery != nil {
		t.Fatalf("absent sections must stay nil")
	}
}

func TestProductContentNullResultIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result": null}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "production", "", srv.Client())
	content, err := client.ProductContent(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("missing content is not an error: %v", err)
	}
	if content == nil || content.Description != nil || content.FAQs != nil {
		t.Fatalf("expected empty content, got %+v", content)
	}
}

func TestProductContentNoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"result": null}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "production", "", srv.Client())
	if _, err := client.ProductContent(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
}

func TestProductContentErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "production", "bad-token", srv.Client())
	_, err := client.ProductContent(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected status error, got %v", err)
	}
}
