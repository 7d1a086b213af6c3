package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/genview/genview/internal/download"
	"github.com/genview/genview/internal/model"
)

// Generated images come back as PNG from the DALL-E family of endpoints.
const GeneratedMIMEType = "image/png"

// generationsPath is appended to the configured base URL.
const generationsPath = "/images/generations"

// Client calls an OpenAI-compatible images endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	clients download.ClientFactory
}

// NewClient creates a new images API client. The base URL points at the API
// root, e.g. "https://api.openai.com/v1".
func NewClient(baseURL, apiKey, model string, clients download.ClientFactory) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		clients: clients,
	}
}

// generationRequest is the JSON body for the generations endpoint.
type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

// generationResponse is the JSON body returned by the generations endpoint.
type generationResponse struct {
	Created int64       `json:"created"`
	Data    []imageData `json:"data"`
	Error   *apiError   `json:"error,omitempty"`
}

// imageData is a single generated image in the response.
type imageData struct {
	URL     string `json:"url"`
	B64JSON string `json:"b64_json"`
}

// apiError is the service-reported failure payload.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Generate requests n images for prompt and maps the response to results:
// base64 payloads become inline byte streams, hosted images become URL-only
// results.
func (c *Client) Generate(ctx context.Context, prompt string, n int) ([]model.ImageResult, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if n <= 0 {
		n = 1
	}

	body, err := json.Marshal(generationRequest{Model: c.model, Prompt: prompt, N: n})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generationsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.clients.NewHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if decoded.Error != nil {
		return nil, fmt.Errorf("image generation failed: %s", decoded.Error.Message)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("image generation failed: unexpected status %s", resp.Status)
	}

	results := make([]model.ImageResult, 0, len(decoded.Data))
	for _, data := range decoded.Data {
		result := model.ImageResult{URL: data.URL, MIMEType: GeneratedMIMEType}
		if data.B64JSON != "" {
			payload, err := base64.StdEncoding.DecodeString(data.B64JSON)
			if err != nil {
				return nil, fmt.Errorf("failed to decode inline image payload: %w", err)
			}
			result.Stream = bytes.NewReader(payload)
		}
		results = append(results, result)
	}

	return results, nil
}
