package safety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	LabelMalicious = 0
	LabelBenign    = 1
)

// Classifier labels raw text as malicious (0) or benign (1) using a hosted
// sequence-classification model. One client is constructed at startup and
// shared; there is no per-call model loading.
type Classifier interface {
	Classify(ctx context.Context, text string) (int, error)
}

type ClassifierImpl struct {
	endpointURL string
	modelName   string
	maxLength   int
	httpClient  *http.Client
}

func NewClassifier(endpointURL, modelName string, maxLength int) Classifier {
	return &ClassifierImpl{
		endpointURL: endpointURL,
		modelName:   modelName,
		maxLength:   maxLength,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *ClassifierImpl) Classify(ctx context.Context, text string) (int, error) {
	body, err := json.Marshal(map[string]interface{}{
		"model":      c.modelName,
		"text":       text,
		"max_length": c.maxLength,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode classification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build classification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var payload struct {
		Label int `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode classification response: %w", err)
	}

	return payload.Label, nil
}

func LabelName(label int) string {
	if label == LabelMalicious {
		return "malicious"
	}
	return "benign"
}
