package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const systemPrompt = "You are a helpful chat assistant. Answer clearly and concisely in plain text."

// Client generates bot responses with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed responder using api-key auth.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GenerateReply sends the user message to Gemini and returns the text
// of the first candidate. Transient API errors are retried with
// exponential backoff.
func (c *Client) GenerateReply(ctx context.Context, userMessage string) (string, error) {
	temp := float32(0.7)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userMessage, genai.RoleUser),
	}

	var text string
	err := retryWithBackoff(ctx, 4, func() error {
		res, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			return fmt.Errorf("gemini generate content: %w", err)
		}

		text = res.Text()
		if text == "" {
			return fmt.Errorf("gemini returned empty text")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}

// retryWithBackoff performs exponential backoff retry for transient errors.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if !isRetriableError(err) {
			return err
		}

		if i < maxRetries-1 {
			waitTime := time.Duration(1<<uint(i)) * time.Second
			log.Printf("Retrying after %v due to: %v", waitTime, err)
			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("max retries exceeded: %w", err)
}

func isRetriableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	for _, marker := range []string{"503", "429", "UNAVAILABLE", "overloaded", "timeout"} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
