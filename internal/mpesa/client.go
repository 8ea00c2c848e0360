// Package mpesa calls the external MPesa verification service. The core only
// consumes a boolean: whether a customer-supplied reference corresponds to a
// real, usable payment.
package mpesa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type verifyRequest struct {
	Reference string `json:"reference"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Verify reports whether reference is a valid payment reference. It is called
// exactly once per submission attempt and never retried; an error means the
// submission is rejected, not that the verifier is asked again.
func (c *Client) Verify(reference string) (bool, error) {
	jsonData, err := json.Marshal(verifyRequest{Reference: reference})
	if err != nil {
		return false, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/verify"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("failed to verify payment: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Valid, nil
}
