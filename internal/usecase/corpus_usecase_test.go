package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"
	"go-finance-assistant/pkg/retrieval"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeRetrievalClient struct {
	importedPaths []string
	queryResults  []retrieval.QueryResult
	err           error
}

func (f *fakeRetrievalClient) CreateCorpus(ctx context.Context, name string) (*retrieval.CorpusInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &retrieval.CorpusInfo{ResourceName: "corpora/" + name, DisplayName: name}, nil
}

func (f *fakeRetrievalClient) DeleteCorpus(ctx context.Context, name string) error {
	return f.err
}

func (f *fakeRetrievalClient) ListCorpora(ctx context.Context) ([]retrieval.CorpusInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []retrieval.CorpusInfo{{DisplayName: "statements"}}, nil
}

func (f *fakeRetrievalClient) GetCorpus(ctx context.Context, name string) ([]retrieval.DocumentInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []retrieval.DocumentInfo{{FileID: "f1"}, {FileID: "f2"}}, nil
}

func (f *fakeRetrievalClient) ImportFiles(ctx context.Context, corpus string, paths []string) (*retrieval.ImportResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.importedPaths = paths
	return &retrieval.ImportResult{ImportedCount: len(paths)}, nil
}

func (f *fakeRetrievalClient) DeleteDocument(ctx context.Context, corpus, documentID string) error {
	return f.err
}

func (f *fakeRetrievalClient) Query(ctx context.Context, corpus, query string, topK int) ([]retrieval.QueryResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.queryResults, nil
}

func setupCorpusTest(t *testing.T, client *fakeRetrievalClient) usecase.CorpusUsecase {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return usecase.NewCorpusUsecase(client, logger, 10)
}

func TestAddDocuments_NormalizesBeforeImport(t *testing.T) {
	client := &fakeRetrievalClient{}
	uc := setupCorpusTest(t, client)

	resp, err := uc.AddDocuments(context.Background(), "statements", &params.AddDocumentsRequest{
		Paths: []string{
			"https://docs.google.com/document/d/doc-id/edit",
			"gs://bucket/jan.csv",
			"https://example.com/nope.pdf",
		},
	})

	assert.Nil(t, err)
	assert.Equal(t, 2, resp.FilesAdded)
	assert.Equal(t, []string{
		"https://drive.google.com/file/d/doc-id/view",
		"gs://bucket/jan.csv",
	}, client.importedPaths)
	assert.Len(t, resp.InvalidPaths, 1)
	assert.Len(t, resp.Conversions, 1)
}

func TestAddDocuments_AllPathsInvalid(t *testing.T) {
	client := &fakeRetrievalClient{}
	uc := setupCorpusTest(t, client)

	resp, err := uc.AddDocuments(context.Background(), "statements", &params.AddDocumentsRequest{
		Paths: []string{"https://example.com/nope.pdf", ""},
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.StatusCode)
	assert.Nil(t, client.importedPaths)
}

func TestAddDocuments_ImportFailure(t *testing.T) {
	client := &fakeRetrievalClient{err: errors.New("service unavailable")}
	uc := setupCorpusTest(t, client)

	resp, err := uc.AddDocuments(context.Background(), "statements", &params.AddDocumentsRequest{
		Paths: []string{"gs://bucket/jan.csv"},
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 502, err.StatusCode)
}

func TestQueryCorpus_ReturnsRankedResults(t *testing.T) {
	client := &fakeRetrievalClient{
		queryResults: []retrieval.QueryResult{
			{SourceName: "jan.csv", Text: "rent 500", Score: 0.92},
			{SourceName: "feb.csv", Text: "rent 510", Score: 0.87},
		},
	}
	uc := setupCorpusTest(t, client)

	resp, err := uc.Query(context.Background(), "statements", &params.CorpusQueryRequest{
		Query: "how much is rent",
	})

	assert.Nil(t, err)
	assert.Equal(t, 2, resp.ResultsCount)
	assert.Equal(t, "how much is rent", resp.Query)
	assert.True(t, resp.Results[0].Score >= resp.Results[1].Score)
}

func TestCorpusInfo_CountsFiles(t *testing.T) {
	uc := setupCorpusTest(t, &fakeRetrievalClient{})

	info, err := uc.CorpusInfo(context.Background(), "statements")

	assert.Nil(t, err)
	assert.Equal(t, 2, info.FileCount)
}

func TestCreateCorpus_ServiceFailure(t *testing.T) {
	uc := setupCorpusTest(t, &fakeRetrievalClient{err: errors.New("quota exceeded")})

	info, err := uc.CreateCorpus(context.Background(), &params.CreateCorpusRequest{Name: "statements"})

	assert.Nil(t, info)
	assert.NotNil(t, err)
	assert.Equal(t, 502, err.StatusCode)
}
