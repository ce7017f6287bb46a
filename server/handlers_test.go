package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	contractx "github.com/napatw/shopmind/assistant/contract"
	nodex "github.com/napatw/shopmind/assistant/nodes"
	catalogx "github.com/napatw/shopmind/catalog"
)

type fakeAssistant struct {
	reply string
	err   error

	customerID string
	message    string
}

func (f *fakeAssistant) HandleMessage(ctx context.Context, customerID string, message string) (string, error) {
	f.customerID = customerID
	f.message = message
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeMemory struct {
	result string
	err    error
	query  string
}

func (f *fakeMemory) Lookup(ctx context.Context, query string) (string, error) {
	f.query = query
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func (f *fakeMemory) Record(ctx context.Context, exch contractx.Exchange) error {
	return nil
}

func newTestServer(t *testing.T, assistant Assistant, memory contractx.MemoryStore) *Server {
	t.Helper()

	s, err := New(catalogx.Default(), assistant, memory, Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []catalogx.Product {
	t.Helper()

	var products []catalogx.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	return products
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodGet, "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	products := decodeProducts(t, rec)
	if len(products) != 12 {
		t.Fatalf("products = %d, want 12", len(products))
	}
	if products[0].ID != "iphone15" {
		t.Fatalf("first product = %q, want iphone15", products[0].ID)
	}
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodGet, "/products/iphone15", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var p catalogx.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if p.Name != "iPhone 15 Pro" {
		t.Fatalf("name = %q", p.Name)
	}
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodGet, "/products/no-such-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodPost, "/products/search", `{"category":"electronics","max_price":600}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	products := decodeProducts(t, rec)
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	if products[0].ID != "airpods" || products[1].ID != "ipad" {
		t.Fatalf("unexpected result: %v, %v", products[0].ID, products[1].ID)
	}
}

func TestSearchProductsEmptyBodyFilters(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodPost, "/products/search", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeProducts(t, rec); len(got) != 12 {
		t.Fatalf("products = %d, want 12", len(got))
	}
}

func TestSearchProductsMalformedBody(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodPost, "/products/search", `{"max_price":"cheap"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchProductsNoMatchReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodPost, "/products/search", `{"query":"nonexistent-term-xyz"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestListCategories(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodGet, "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp categoriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	want := []string{"electronics", "clothing", "home", "books"}
	if len(resp.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", resp.Categories, want)
	}
	for i := range want {
		if resp.Categories[i] != want[i] {
			t.Fatalf("categories[%d] = %q, want %q", i, resp.Categories[i], want[i])
		}
	}
}

func TestChat(t *testing.T) {
	t.Parallel()

	assistant := &fakeAssistant{reply: "How about the MacBook Air M2?"}
	s := newTestServer(t, assistant, &fakeMemory{})

	rec := doRequest(t, s, http.MethodPost, "/chat", `{"message":"I need a laptop","customer_id":"c1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if resp.Response != "How about the MacBook Air M2?" {
		t.Fatalf("response = %q", resp.Response)
	}
	if resp.Timestamp == "" {
		t.Fatal("timestamp is empty")
	}
	if assistant.customerID != "c1" || assistant.message != "I need a laptop" {
		t.Fatalf("assistant got customer=%q message=%q", assistant.customerID, assistant.message)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	t.Parallel()

	assistant := &fakeAssistant{err: nodex.ErrInvalidMessage}
	s := newTestServer(t, assistant, &fakeMemory{})

	rec := doRequest(t, s, http.MethodPost, "/chat", `{"message":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatPipelineError(t *testing.T) {
	t.Parallel()

	assistant := &fakeAssistant{err: errors.New("graph panic")}
	s := newTestServer(t, assistant, &fakeMemory{})

	rec := doRequest(t, s, http.MethodPost, "/chat", `{"message":"hello there"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestMemorySearch(t *testing.T) {
	t.Parallel()

	memory := &fakeMemory{result: "likes hiking gear"}
	s := newTestServer(t, &fakeAssistant{}, memory)

	rec := doRequest(t, s, http.MethodGet, "/memory/search?query=hiking", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp memorySearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode memory response: %v", err)
	}
	if resp.Query != "hiking" || resp.Result != "likes hiking gear" {
		t.Fatalf("resp = %#v", resp)
	}
}

func TestMemorySearchMissingQuery(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})
	rec := doRequest(t, s, http.MethodGet, "/memory/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMemorySearchStoreError(t *testing.T) {
	t.Parallel()

	memory := &fakeMemory{err: errors.New("connection refused")}
	s := newTestServer(t, &fakeAssistant{}, memory)

	rec := doRequest(t, s, http.MethodGet, "/memory/search?query=anything", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestHealthAndRoot(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})

	if rec := doRequest(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}

	rec := doRequest(t, s, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("root status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Smart Shopping Assistant API is running") {
		t.Fatalf("root body = %q", rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &fakeAssistant{}, &fakeMemory{})

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
