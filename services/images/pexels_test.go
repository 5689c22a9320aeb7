package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParsesPhotos(t *testing.T) {
	var gotAuth, gotQuery, gotPerPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotPerPage = r.URL.Query().Get("per_page")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"photos": [
				{"id": 101, "src": {"medium": "https://img.example/101-medium.jpg", "large": "https://img.example/101-large.jpg"}},
				{"id": 102, "src": {"medium": "https://img.example/102-medium.jpg"}}
			]
		}`))
	}))
	defer server.Close()

	c := NewClient("test-key")
	c.baseURL = server.URL

	results := c.Search(context.Background(), "sunset beach")

	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "sunset beach", gotQuery)
	assert.Equal(t, "15", gotPerPage)

	require.Len(t, results, 2)
	assert.Equal(t, 101, results[0].ID)
	assert.Equal(t, "https://img.example/101-medium.jpg", results[0].URL)
	assert.Equal(t, 102, results[1].ID)
}

func TestSearchWithoutAPIKeyReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the provider without an API key")
	}))
	defer server.Close()

	c := NewClient("")
	c.baseURL = server.URL

	results := c.Search(context.Background(), "anything")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchProviderErrorReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient("test-key")
	c.baseURL = server.URL

	assert.Empty(t, c.Search(context.Background(), "cats"))
}

func TestSearchMalformedBodyReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewClient("test-key")
	c.baseURL = server.URL

	assert.Empty(t, c.Search(context.Background(), "dogs"))
}

func TestSearchUnreachableProviderReturnsEmpty(t *testing.T) {
	c := NewClient("test-key")
	c.baseURL = "http://127.0.0.1:1"

	assert.Empty(t, c.Search(context.Background(), "mountains"))
}
