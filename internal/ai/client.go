// Package ai talks to the OpenAI chat completions API for the two CV tasks
// the platform delegates to a model: extracting structured candidate fields
// from raw CV text, and judging whether a CV is relevant to a position.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	chatModel      = "gpt-4"
	httpTimeout    = 30 * time.Second
	// maxCVChars caps how much resume text goes into a prompt.
	maxCVChars = 3500
)

// ExtractedCandidate is the structured output of CV field extraction.
type ExtractedCandidate struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Experience int32  `json:"experience"`
}

// Extractor derives candidate fields from CV text.
type Extractor interface {
	ExtractCandidate(ctx context.Context, cvText string) (*ExtractedCandidate, error)
}

// Classifier judges CV relevance for a position.
type Classifier interface {
	Classify(ctx context.Context, cvText, position string) (relevant bool, rationale string, err error)
}

// Client implements Extractor and Classifier over the chat completions API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client with a shared HTTP client. The API key comes
// from OPENAI_API_KEY; OPENAI_BASE_URL overrides the endpoint.
func NewClient() *Client {
	base := os.Getenv("OPENAI_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: base,
		http:    &http.Client{Timeout: httpTimeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ExtractCandidate asks the model for structured candidate fields. Missing
// experience comes back as 0 rather than an error.
func (c *Client) ExtractCandidate(ctx context.Context, cvText string) (*ExtractedCandidate, error) {
	prompt := fmt.Sprintf(`You are a CV analysis system. Analyze the following resume text and return structured candidate information in JSON format:
{
  "name": "Full Name",
  "email": "email@example.com",
  "position": "Desired Position",
  "experience": number_of_years_of_experience
}

If experience is missing, return 0. Return JSON only.

Here is the resume:
"""
%s
"""`, truncate(cvText, maxCVChars))

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out ExtractedCandidate
	if err := json.Unmarshal([]byte(extractJSON(content)), &out); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	return &out, nil
}

// Classify asks the model whether the CV fits the position. The first word of
// the answer decides; the rest is kept as the rationale.
func (c *Client) Classify(ctx context.Context, cvText, position string) (bool, string, error) {
	prompt := fmt.Sprintf(`Evaluate this resume for the position %q. Does the candidate meet the typical requirements? Answer with "yes" or "no", then a one-sentence reason.

%s`, position, truncate(cvText, maxCVChars))

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return false, "", err
	}

	answer := strings.TrimSpace(strings.ToLower(content))
	return strings.HasPrefix(answer, "yes"), strings.TrimSpace(content), nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	body, err := json.Marshal(chatRequest{
		Model: chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a recruitment assistant."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// extractJSON trims prose the model may wrap around the JSON object.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
