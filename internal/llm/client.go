// Package llm provides bot.Generator implementations: a chat-completion
// client speaking the OpenAI wire format, and a deterministic rule-based
// generator used when no API key is configured.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/booking-assistant/internal/bot"
)

// DefaultBaseURL is the OpenAI API root. Point it elsewhere for any
// OpenAI-compatible serving endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client calls a chat-completions endpoint to turn the collector's
// instructions into user-facing text. The conversation log is sent as
// context; the instruction rides along as the final user message.
type Client struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewClient returns a Client for the given endpoint and model.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements bot.Generator.
func (c *Client) Generate(ctx context.Context, instruction string, log []bot.Message) (string, error) {
	messages := make([]wireMessage, 0, len(log)+1)
	for _, m := range log {
		messages = append(messages, wireMessage{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, wireMessage{Role: "user", Content: instruction})

	payload, err := json.Marshal(completionRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("llm: decode response (status=%d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		if cr.Error.Message != "" {
			return "", fmt.Errorf("llm: %s (status=%d)", cr.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("llm: request failed (status=%d)", resp.StatusCode)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("llm: response contained no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
