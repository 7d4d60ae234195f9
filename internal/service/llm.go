package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"deepmirror/internal/config"
)

// Completion is one provider response: the text body plus usage counters
// when the API reported them.
type Completion struct {
	Text         string
	InputTokens  *int
	OutputTokens *int
}

// LLMClient sends a system+user prompt pair to a language model.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (*Completion, error)
}

type anthropicClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewAnthropicClient creates a messages-API client with the configured
// request timeout.
func NewAnthropicClient(cfg *config.AIConfig) LLMClient {
	return &anthropicClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

func (c *anthropicClient) Complete(ctx context.Context, system, user string) (*Completion, error) {
	reqBody := map[string]interface{}{
		"model":       c.config.Model,
		"max_tokens":  c.config.MaxTokens,
		"temperature": c.config.Temperature,
		"system":      system,
		"messages": []map[string]string{
			{"role": "user", "content": user},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.MessagesEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var apiResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		Usage *struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, err
	}

	text := ""
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, fmt.Errorf("empty response from provider")
	}

	completion := &Completion{Text: text}
	if apiResp.Usage != nil {
		in := apiResp.Usage.InputTokens
		out := apiResp.Usage.OutputTokens
		completion.InputTokens = &in
		completion.OutputTokens = &out
	}
	return completion, nil
}
