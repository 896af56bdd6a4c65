package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/config"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/google/uuid"
)

// Client talks to the external insight model API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a client for the insight model API.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

// APIError represents an insight model API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("insight model API error [%d]: %s", e.StatusCode, e.Message)
}

type insightRequest struct {
	AnalysisData insights.AnalysisReport `json:"analysis_data"`
	EmployeeName string                  `json:"employee_name"`
	Model        string                  `json:"model,omitempty"`
}

// GenerateInsight asks the model for a narrative summary of the report.
func (c *Client) GenerateInsight(ctx context.Context, report insights.AnalysisReport, employeeName string) (*insights.AIInsight, error) {
	payload, err := json.Marshal(insightRequest{
		AnalysisData: report,
		EmployeeName: employeeName,
		Model:        c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/insights", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result insights.AIInsight
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode insight response: %w", err)
	}

	return &result, nil
}
