package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FallbackAnswer is returned to callers whenever the advisory service
// fails for any reason; advisory errors never propagate past the client
const FallbackAnswer = "I'm having trouble connecting to the research knowledge base right now. Please try again later."

const systemInstructionTemplate = `You are an expert AI Lab Assistant for a research equipment portal.
Current available equipment: %s
Your goal is to provide:
1. Recommendations for equipment based on research descriptions.
2. Maintenance predictions based on total usage hours (high usage > 3000 hours needs inspection).
3. Research workflow suggestions.
Keep answers concise, technical, and helpful.`

// Logger is the logging dependency of the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client calls the advisory text service (a Gemini-style
// generateContent endpoint). The service is treated as an opaque
// text-in/text-out collaborator.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new advisory service client
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Ask sends the prompt together with the reduced equipment snapshot and
// returns the advisory text. It never returns an error to the caller:
// any failure is logged and converted into FallbackAnswer.
func (c *Client) Ask(ctx context.Context, prompt string, snapshot []EquipmentSnapshot) string {
	answer, err := c.generate(ctx, prompt, snapshot)
	if err != nil {
		c.log.Error("Assistant: falling back to canned answer: %v", err)
		return FallbackAnswer
	}
	return answer
}

func (c *Client) generate(ctx context.Context, prompt string, snapshot []EquipmentSnapshot) (string, error) {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("%w: marshal snapshot: %v", ErrInternal, err)
	}

	body := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: fmt.Sprintf(systemInstructionTemplate, snapshotJSON)}},
		},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{Temperature: 0.7},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	answer := parsed.text()
	if answer == "" {
		return "", ErrEmptyAnswer
	}

	return answer, nil
}
