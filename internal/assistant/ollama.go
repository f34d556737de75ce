package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Rhushya/Kloudmate/internal/errors"
)

const (
	generateEndpoint      = "/api/generate"
	defaultRequestTimeout = 120 * time.Second
)

// OllamaClient implements CompletionService against an Ollama server's
// /api/generate endpoint.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaClient builds a client for the given server and model. A nil
// httpClient gets a default with a generous timeout; local models are
// slow on first load.
func NewOllamaClient(baseURL, model string, httpClient *http.Client) *OllamaClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &OllamaClient{
		baseURL: baseURL,
		model:   model,
		client:  httpClient,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Complete sends one prompt and returns the completion text verbatim.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	errFactory := errors.New()

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", errFactory.Wrap(ErrCompletionRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", errFactory.Wrap(ErrCompletionRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errFactory.Wrap(ErrCompletionRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errFactory.WithData(ErrCompletionStatus, struct {
			Status string
			URL    string
		}{
			Status: resp.Status,
			URL:    c.baseURL + generateEndpoint,
		})
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errFactory.Wrap(ErrCompletionDecode, err)
	}

	return decoded.Response, nil
}
