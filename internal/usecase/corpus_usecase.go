package usecase

import (
	"context"
	"fmt"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/pkg/retrieval"

	"github.com/sirupsen/logrus"
)

type CorpusUsecase interface {
	CreateCorpus(ctx context.Context, req *params.CreateCorpusRequest) (*retrieval.CorpusInfo, *response.CustomError)
	DeleteCorpus(ctx context.Context, name string) *response.CustomError
	ListCorpora(ctx context.Context) (*params.CorpusListResponse, *response.CustomError)
	CorpusInfo(ctx context.Context, name string) (*params.CorpusInfoResponse, *response.CustomError)
	AddDocuments(ctx context.Context, corpus string, req *params.AddDocumentsRequest) (*params.AddDocumentsResponse, *response.CustomError)
	DeleteDocument(ctx context.Context, corpus, documentID string) *response.CustomError
	Query(ctx context.Context, corpus string, req *params.CorpusQueryRequest) (*params.CorpusQueryResponse, *response.CustomError)
}

type CorpusUsecaseImpl struct {
	client retrieval.Client
	logger *logrus.Logger
	topK   int
}

func NewCorpusUsecase(client retrieval.Client, logger *logrus.Logger, topK int) CorpusUsecase {
	return &CorpusUsecaseImpl{
		client: client,
		logger: logger,
		topK:   topK,
	}
}

func (u *CorpusUsecaseImpl) CreateCorpus(ctx context.Context, req *params.CreateCorpusRequest) (*retrieval.CorpusInfo, *response.CustomError) {
	info, err := u.client.CreateCorpus(ctx, req.Name)
	if err != nil {
		u.logger.WithError(err).WithField("corpus", req.Name).Error("Failed to create corpus")
		return nil, response.ExternalServiceError(fmt.Sprintf("error creating corpus: %v", err))
	}
	return info, nil
}

func (u *CorpusUsecaseImpl) DeleteCorpus(ctx context.Context, name string) *response.CustomError {
	if err := u.client.DeleteCorpus(ctx, name); err != nil {
		u.logger.WithError(err).WithField("corpus", name).Error("Failed to delete corpus")
		return response.ExternalServiceError(fmt.Sprintf("error deleting corpus: %v", err))
	}
	return nil
}

func (u *CorpusUsecaseImpl) ListCorpora(ctx context.Context) (*params.CorpusListResponse, *response.CustomError) {
	corpora, err := u.client.ListCorpora(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list corpora")
		return nil, response.ExternalServiceError(fmt.Sprintf("error listing corpora: %v", err))
	}
	return &params.CorpusListResponse{Corpora: corpora}, nil
}

func (u *CorpusUsecaseImpl) CorpusInfo(ctx context.Context, name string) (*params.CorpusInfoResponse, *response.CustomError) {
	files, err := u.client.GetCorpus(ctx, name)
	if err != nil {
		u.logger.WithError(err).WithField("corpus", name).Error("Failed to get corpus info")
		return nil, response.ExternalServiceError(fmt.Sprintf("error getting corpus information: %v", err))
	}
	return &params.CorpusInfoResponse{
		CorpusName: name,
		FileCount:  len(files),
		Files:      files,
	}, nil
}

// AddDocuments validates and normalizes ingestion paths locally before
// handing them to the retrieval service; Docs URLs become Drive file URLs
// and unrecognized formats are reported back, not imported.
func (u *CorpusUsecaseImpl) AddDocuments(ctx context.Context, corpus string, req *params.AddDocumentsRequest) (*params.AddDocumentsResponse, *response.CustomError) {
	normalized := retrieval.NormalizePaths(req.Paths)
	if len(normalized.Valid) == 0 {
		return nil, response.BadRequestError("no valid paths provided: expected Google Drive URLs or gs:// paths")
	}

	result, err := u.client.ImportFiles(ctx, corpus, normalized.Valid)
	if err != nil {
		u.logger.WithError(err).WithField("corpus", corpus).Error("Failed to import documents")
		return nil, response.ExternalServiceError(fmt.Sprintf("error adding data to corpus: %v", err))
	}

	u.logger.WithFields(logrus.Fields{
		"corpus":      corpus,
		"files_added": result.ImportedCount,
	}).Info("Documents imported into corpus")

	return &params.AddDocumentsResponse{
		CorpusName:   corpus,
		FilesAdded:   result.ImportedCount,
		Paths:        normalized.Valid,
		InvalidPaths: normalized.Invalid,
		Conversions:  normalized.Conversions,
	}, nil
}

func (u *CorpusUsecaseImpl) DeleteDocument(ctx context.Context, corpus, documentID string) *response.CustomError {
	if err := u.client.DeleteDocument(ctx, corpus, documentID); err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"corpus":      corpus,
			"document_id": documentID,
		}).Error("Failed to delete document")
		return response.ExternalServiceError(fmt.Sprintf("error deleting document: %v", err))
	}
	return nil
}

func (u *CorpusUsecaseImpl) Query(ctx context.Context, corpus string, req *params.CorpusQueryRequest) (*params.CorpusQueryResponse, *response.CustomError) {
	results, err := u.client.Query(ctx, corpus, req.Query, u.topK)
	if err != nil {
		u.logger.WithError(err).WithField("corpus", corpus).Error("Failed to query corpus")
		return nil, response.ExternalServiceError(fmt.Sprintf("error querying corpus: %v", err))
	}

	return &params.CorpusQueryResponse{
		CorpusName:   corpus,
		Query:        req.Query,
		Results:      results,
		ResultsCount: len(results),
	}, nil
}
