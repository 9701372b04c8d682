package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"careeragent/config"
	"careeragent/parsers"
	"careeragent/utils"
)

// ErrAllModelsFailed is returned when the primary model and every fallback
// model failed to produce a response.
var ErrAllModelsFailed = errors.New("all models failed")

// ChatUnavailableMessage is what chat users see when no model responds.
const ChatUnavailableMessage = "I'm sorry, I encountered an error processing your request. The AI service is temporarily unavailable. Please try again in a moment."

const jsonInstruction = "\n\nIMPORTANT: Respond with valid, complete JSON only. No markdown formatting. Ensure all strings are properly closed and the JSON is complete."

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMClient talks to an OpenAI-compatible chat-completions endpoint. The
// primary model is tried first, then each fallback model in order. The
// first model that returns a non-empty response wins.
type LLMClient struct {
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	maxRetries     int
	httpClient     *http.Client
	logger         *utils.Logger
}

func NewLLMClient(cfg config.LLMConfig, logger *utils.Logger) *LLMClient {
	return &LLMClient{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		model:          cfg.Model,
		fallbackModels: cfg.FallbackModels,
		maxRetries:     cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger.WithComponent("llm"),
	}
}

// Call sends a prompt and returns the raw completion text.
func (c *LLMClient) Call(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	messages := buildMessages(systemPrompt, nil, prompt)
	return c.complete(ctx, messages, temperature, maxTokens)
}

// CallJSON sends a prompt that expects a JSON object back. The strict-JSON
// instruction is appended to the prompt and the response is run through the
// recovery parser, so a successful return is always a valid object. The
// error is non-nil only when every model failed.
func (c *LLMClient) CallJSON(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (map[string]interface{}, error) {
	messages := buildMessages(systemPrompt, nil, prompt+jsonInstruction)
	text, err := c.complete(ctx, messages, temperature, maxTokens)
	if err != nil {
		return nil, err
	}

	obj, recovered := parsers.TryRecoverJSON(text)
	if !recovered {
		c.logger.Warn("response could not be parsed as JSON, returning placeholder", map[string]interface{}{
			"preview": utils.Truncate(text, 200),
		})
		return parsers.PlaceholderObject(), nil
	}
	return obj, nil
}

// Chat runs a multi-turn conversation. It never returns an error: when all
// models fail the fixed unavailable message is returned so the surface can
// always show something to the user.
func (c *LLMClient) Chat(ctx context.Context, history []ChatMessage, systemPrompt string, temperature float64, maxTokens int) string {
	messages := buildMessages(systemPrompt, history, "")
	text, err := c.complete(ctx, messages, temperature, maxTokens)
	if err != nil {
		c.logger.Error("chat failed on every model", err)
		return ChatUnavailableMessage
	}
	return text
}

func (c *LLMClient) complete(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	modelsToTry := append([]string{c.model}, c.fallbackModels...)

	for _, model := range modelsToTry {
		text, err := c.completeWithModel(ctx, model, messages, temperature, maxTokens)
		if err != nil {
			c.logger.Warn("model call failed, trying next", map[string]interface{}{
				"model": model,
				"error": err.Error(),
			})
			continue
		}
		if text != "" {
			return text, nil
		}
	}

	return "", ErrAllModelsFailed
}

func (c *LLMClient) completeWithModel(ctx context.Context, model string, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("chat completions API error (%d): %s", resp.StatusCode, utils.Truncate(string(body), 300))
			continue
		}

		var completion chatCompletionResponse
		if err := json.Unmarshal(body, &completion); err != nil {
			lastErr = err
			continue
		}

		if len(completion.Choices) == 0 {
			lastErr = fmt.Errorf("no choices returned")
			continue
		}

		return completion.Choices[0].Message.Content, nil
	}

	return "", lastErr
}

func buildMessages(systemPrompt string, history []ChatMessage, userPrompt string) []ChatMessage {
	var messages []ChatMessage
	if systemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, history...)
	if userPrompt != "" {
		messages = append(messages, ChatMessage{Role: "user", Content: userPrompt})
	}
	return messages
}
