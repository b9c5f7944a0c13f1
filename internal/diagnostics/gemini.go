package diagnostics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"orbitdeck/internal/telemetry"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiTimeout = 30 * time.Second
)

// Compile-time check that GeminiAnalyzer satisfies Analyzer.
var _ Analyzer = (*GeminiAnalyzer)(nil)

// GeminiAnalyzer implements Analyzer against the Gemini generateContent API.
// It uses a direct HTTP client rather than the vendor SDK to keep the
// dependency tree light; the response schema makes the model return strictly
// structured JSON.
type GeminiAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiAnalyzer creates an analyzer for the given API key and model.
func NewGeminiAnalyzer(apiKey, model string) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: geminiTimeout},
	}
}

// SetBaseURL overrides the API endpoint. Intended for testing.
func (g *GeminiAnalyzer) SetBaseURL(u string) { g.baseURL = u }

// Model returns the model identifier this analyzer calls.
func (g *GeminiAnalyzer) Model() string { return g.model }

// --- API request/response types ---

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

// geminiSchema is the subset of the OpenAPI schema dialect the API accepts.
type geminiSchema struct {
	Type       string                  `json:"type"`
	Enum       []string                `json:"enum,omitempty"`
	MaxLength  int                     `json:"maxLength,omitempty"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// resultSchema constrains the model to the Result shape: enumerated status,
// bounded-length summary and recommendation.
func resultSchema() *geminiSchema {
	return &geminiSchema{
		Type: "OBJECT",
		Properties: map[string]geminiSchema{
			"status": {
				Type: "STRING",
				Enum: []string{string(StatusOptimal), string(StatusWarning), string(StatusCritical)},
			},
			"summary":        {Type: "STRING", MaxLength: 300},
			"recommendation": {Type: "STRING", MaxLength: 300},
		},
		Required: []string{"status", "summary", "recommendation"},
	}
}

// Analyze sends the samples to the model and parses the structured verdict.
// The call has no retry; any failure is final for this run.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, samples []telemetry.Sample) (*Result, error) {
	if g.apiKey == "" {
		return nil, ErrNoCredential
	}

	prompt, err := buildPrompt(samples)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to build prompt: %w", err)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   resultSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope geminiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	text := candidateText(envelope)
	if text == "" {
		return nil, fmt.Errorf("gemini: empty response")
	}

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse analysis: %w", err)
	}
	return &result, nil
}

// candidateText returns the first non-empty text part of the first candidate.
func candidateText(resp geminiResponse) string {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

// buildPrompt serializes the samples into the analysis instruction.
func buildPrompt(samples []telemetry.Sample) (string, error) {
	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are the diagnostics assistant for a spacecraft console. ")
	b.WriteString("Review the recent telemetry readings below (CPU load %, memory usage %, temperature °C, network latency ms) ")
	b.WriteString("and return a JSON object with an overall status (optimal, warning, or critical), ")
	b.WriteString("a one- or two-sentence summary, and a single actionable recommendation.\n\n")
	b.WriteString("Telemetry:\n")
	b.Write(data)
	return b.String(), nil
}
