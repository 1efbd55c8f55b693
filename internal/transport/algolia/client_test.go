package algolia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuery_SendsPayloadAndHeaders(t *testing.T) {
	var gotPath, gotApp, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotApp = r.Header.Get("X-Algolia-Application-Id")
		gotKey = r.Header.Get("X-Algolia-API-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(QueryResponse{
			NbHits:           12,
			Page:             0,
			ProcessingTimeMS: 4,
		})
	}))
	defer srv.Close()

	c := NewClient(&Config{
		AppID:     "APP123",
		APIKey:    "secret",
		IndexName: "products",
		BaseURL:   srv.URL,
	})

	resp, err := c.Query(context.Background(), QueryParams{
		Query:       "laptop",
		HitsPerPage: 5,
		Filters:     "price_sale < 2000000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/1/indexes/products/query" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotApp != "APP123" || gotKey != "secret" {
		t.Errorf("missing auth headers: app=%q key=%q", gotApp, gotKey)
	}
	if gotBody["query"] != "laptop" || gotBody["filters"] != "price_sale < 2000000" {
		t.Errorf("unexpected payload: %v", gotBody)
	}
	if resp.NbHits != 12 || resp.ProcessingTimeMS != 4 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestQuery_OmitsEmptyFilters(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(QueryResponse{})
	}))
	defer srv.Close()

	c := NewClient(&Config{AppID: "a", APIKey: "k", IndexName: "i", BaseURL: srv.URL})
	if _, err := c.Query(context.Background(), QueryParams{Query: "x", HitsPerPage: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := gotBody["filters"]; present {
		t.Error("empty filters must be omitted from the payload")
	}
}

func TestQuery_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Invalid API key", "status": 403})
	}))
	defer srv.Close()

	c := NewClient(&Config{AppID: "a", APIKey: "bad", IndexName: "i", BaseURL: srv.URL})
	_, err := c.Query(context.Background(), QueryParams{Query: "x", HitsPerPage: 5})
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestQuery_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(&Config{AppID: "a", APIKey: "k", IndexName: "i", BaseURL: srv.URL})
	if _, err := c.Query(context.Background(), QueryParams{Query: "x", HitsPerPage: 5}); err == nil {
		t.Fatal("expected transport error")
	}
}
