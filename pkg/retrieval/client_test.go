package retrieval_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-finance-assistant/pkg/retrieval"

	"github.com/stretchr/testify/assert"
)

func TestClientCreateCorpus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/corpora", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "statements", body["display_name"])

		w.Write([]byte(`{"resource_name": "corpora/statements-123", "display_name": "statements"}`))
	}))
	defer server.Close()

	client := retrieval.NewClient(server.URL, "test-key")

	info, err := client.CreateCorpus(context.Background(), "statements")

	assert.NoError(t, err)
	assert.Equal(t, "corpora/statements-123", info.ResourceName)
}

func TestClientQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corpora/statements/query", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rent", body["text"])
		assert.Equal(t, float64(5), body["top_k"])

		w.Write([]byte(`{"results": [{"source_name": "jan.csv", "text": "rent 500", "score": 0.91}]}`))
	}))
	defer server.Close()

	client := retrieval.NewClient(server.URL, "")

	results, err := client.Query(context.Background(), "statements", "rent", 5)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 0.91, results[0].Score)
}

func TestClientImportFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corpora/statements/documents", r.URL.Path)
		w.Write([]byte(`{"imported_count": 2}`))
	}))
	defer server.Close()

	client := retrieval.NewClient(server.URL, "")

	result, err := client.ImportFiles(context.Background(), "statements", []string{
		"https://drive.google.com/file/d/a/view",
		"gs://bucket/b.csv",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.ImportedCount)
}

func TestClientCorpusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := retrieval.NewClient(server.URL, "")

	err := client.DeleteCorpus(context.Background(), "ghost")

	assert.ErrorContains(t, err, "corpus not found")
}
