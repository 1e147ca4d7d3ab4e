package params

import "go-finance-assistant/pkg/retrieval"

type CreateCorpusRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type AddDocumentsRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,dive,required"`
}

type AddDocumentsResponse struct {
	CorpusName   string   `json:"corpus_name"`
	FilesAdded   int      `json:"files_added"`
	Paths        []string `json:"paths"`
	InvalidPaths []string `json:"invalid_paths,omitempty"`
	Conversions  []string `json:"conversions,omitempty"`
}

type CorpusQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type CorpusQueryResponse struct {
	CorpusName   string                    `json:"corpus_name"`
	Query        string                    `json:"query"`
	Results      []retrieval.QueryResult   `json:"results"`
	ResultsCount int                       `json:"results_count"`
}

type CorpusInfoResponse struct {
	CorpusName string                   `json:"corpus_name"`
	FileCount  int                      `json:"file_count"`
	Files      []retrieval.DocumentInfo `json:"files"`
}

type CorpusListResponse struct {
	Corpora []retrieval.CorpusInfo `json:"corpora"`
}
