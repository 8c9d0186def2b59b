// Package ollama implements the client for the locally hosted Ollama
// inference endpoint. Generation is a single synchronous request/response
// call; streaming is explicitly disabled.
package ollama

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qim/ai-backend/internal/config"
)

// generateTimeout bounds a single generation call end to end.
const generateTimeout = 120 * time.Second

// Fixed sampling parameters for every generation call.
const (
	temperature = 0.3
	numPredict  = 2048
)

// Client talks to one Ollama endpoint with one configured model.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a Client from the service configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.OllamaBaseURL, "/"),
		model:   cfg.OllamaModel,
		httpClient: &http.Client{
			Timeout: generateTimeout,
		},
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends the prompt (and optional system instruction) to the
// endpoint and returns the trimmed response text. It blocks until the
// endpoint answers or the timeout elapses; there is no retry.
func (c *Client) Generate(prompt, system string) (string, error) {
	payload := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		System: system,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			NumPredict:  numPredict,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	return strings.TrimSpace(parsed.Response), nil
}
