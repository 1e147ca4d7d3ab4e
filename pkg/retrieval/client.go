package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type QueryResult struct {
	SourceURI  string  `json:"source_uri"`
	SourceName string  `json:"source_name"`
	Text       string  `json:"text"`
	Score      float64 `json:"score"`
}

type CorpusInfo struct {
	ResourceName string `json:"resource_name"`
	DisplayName  string `json:"display_name"`
	CreateTime   string `json:"create_time"`
	UpdateTime   string `json:"update_time"`
}

type DocumentInfo struct {
	FileID      string `json:"file_id"`
	DisplayName string `json:"display_name"`
	SourceURI   string `json:"source_uri"`
	CreateTime  string `json:"create_time"`
	UpdateTime  string `json:"update_time"`
}

type ImportResult struct {
	ImportedCount int `json:"imported_count"`
}

// Client is the hosted document-retrieval service: corpus lifecycle,
// document ingestion and ranked text queries.
type Client interface {
	CreateCorpus(ctx context.Context, name string) (*CorpusInfo, error)
	DeleteCorpus(ctx context.Context, name string) error
	ListCorpora(ctx context.Context) ([]CorpusInfo, error)
	GetCorpus(ctx context.Context, name string) ([]DocumentInfo, error)
	ImportFiles(ctx context.Context, corpus string, paths []string) (*ImportResult, error)
	DeleteDocument(ctx context.Context, corpus, documentID string) error
	Query(ctx context.Context, corpus, query string, topK int) ([]QueryResult, error)
}

type ClientImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	return &ClientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *ClientImpl) CreateCorpus(ctx context.Context, name string) (*CorpusInfo, error) {
	var info CorpusInfo
	body := map[string]string{"display_name": name}
	if err := c.do(ctx, http.MethodPost, "/corpora", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *ClientImpl) DeleteCorpus(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/corpora/"+url.PathEscape(name), nil, nil)
}

func (c *ClientImpl) ListCorpora(ctx context.Context) ([]CorpusInfo, error) {
	var payload struct {
		Corpora []CorpusInfo `json:"corpora"`
	}
	if err := c.do(ctx, http.MethodGet, "/corpora", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Corpora, nil
}

func (c *ClientImpl) GetCorpus(ctx context.Context, name string) ([]DocumentInfo, error) {
	var payload struct {
		Files []DocumentInfo `json:"files"`
	}
	if err := c.do(ctx, http.MethodGet, "/corpora/"+url.PathEscape(name), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Files, nil
}

func (c *ClientImpl) ImportFiles(ctx context.Context, corpus string, paths []string) (*ImportResult, error) {
	var result ImportResult
	body := map[string]interface{}{"paths": paths}
	if err := c.do(ctx, http.MethodPost, "/corpora/"+url.PathEscape(corpus)+"/documents", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ClientImpl) DeleteDocument(ctx context.Context, corpus, documentID string) error {
	path := "/corpora/" + url.PathEscape(corpus) + "/documents/" + url.PathEscape(documentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *ClientImpl) Query(ctx context.Context, corpus, query string, topK int) ([]QueryResult, error) {
	var payload struct {
		Results []QueryResult `json:"results"`
	}
	body := map[string]interface{}{
		"text":  query,
		"top_k": topK,
	}
	if err := c.do(ctx, http.MethodPost, "/corpora/"+url.PathEscape(corpus)+"/query", body, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *ClientImpl) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode retrieval request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build retrieval request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("retrieval request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("corpus not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("retrieval service returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode retrieval response: %w", err)
		}
	}
	return nil
}
