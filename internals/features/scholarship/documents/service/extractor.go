// file: internals/features/scholarship/documents/service/extractor.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	model "iskolar_backend/internals/features/scholarship/documents/model"
)

// ErrExtractionFailed covers every failure of the external AI capability:
// transport errors, timeouts, and non-2xx responses all read the same to the
// orchestrator — the document stays unverified and the queue moves on.
var ErrExtractionFailed = errors.New("document extraction failed")

// ExpectedField is one declared value the extraction should be checked against.
type ExpectedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ExtractionRequest struct {
	FileURL        string          `json:"file_url"`
	DocumentType   string          `json:"document_type"`
	ExpectedFields []ExpectedField `json:"expected_fields"`
}

// ExtractionResult is the structured verdict from the AI service:
// extracted values, per-field discrepancies (empty = all matched), and a
// short natural-language synopsis.
type ExtractionResult struct {
	ExtractedData map[string]any      `json:"extracted_data"`
	Discrepancies []model.Discrepancy `json:"discrepancies"`
	Summary       string              `json:"summary"`
}

// Extractor is the boundary to the external AI extraction capability.
type Extractor interface {
	Extract(ctx context.Context, req ExtractionRequest) (*ExtractionResult, error)
}

/* ============================================
   HTTP implementation
============================================ */

type HTTPExtractor struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPExtractor(baseURL, apiKey string) *HTTPExtractor {
	return &HTTPExtractor{
		BaseURL: baseURL,
		APIKey:  apiKey,
		// the model call is slow; this is the per-document ceiling
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, req ExtractionRequest) (*ExtractionResult, error) {
	if e.BaseURL == "" {
		return nil, fmt.Errorf("%w: verifier service is not configured", ErrExtractionFailed)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if e.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+e.APIKey)
	}

	resp, err := e.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrExtractionFailed, resp.StatusCode, string(msg))
	}

	var out ExtractionResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: bad response body: %v", ErrExtractionFailed, err)
	}
	return &out, nil
}
