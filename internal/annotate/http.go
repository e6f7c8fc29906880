package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPAnnotator calls an external annotator service (e.g. a spaCy sidecar)
// over HTTP. The service receives {"text": ...} and returns the sentence
// annotations as JSON.
type HTTPAnnotator struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPAnnotator creates an annotator client for the given base URL.
func NewHTTPAnnotator(baseURL string, timeout time.Duration) *HTTPAnnotator {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPAnnotator{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Sentences []Sentence `json:"sentences"`
}

// Annotate sends the text to the annotator service and decodes the result.
func (a *HTTPAnnotator) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("annotator returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return decoded.Sentences, nil
}
