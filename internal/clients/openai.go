package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tripplanner/internal/config"
	"tripplanner/internal/domain"
)

// TextGenerator is the narrow seam between the session controller and the
// generation service: one prompt in, one text out.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (text string, model string, err error)
}

const maxCompletionTokens = 2000

// OpenAIClient calls an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	APIKey     string
	BaseURL    string
	Models     []string
	HTTPClient *http.Client
}

func NewOpenAIClient(env config.Env) *OpenAIClient {
	return &OpenAIClient{
		APIKey:  env.OpenAIAPIKey,
		BaseURL: env.OpenAIBaseURL,
		Models:  env.OpenAIModels,
		HTTPClient: &http.Client{
			Timeout: env.GenTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends one synchronous generation call. Failures are never retried;
// the configured model chain is only walked further when the endpoint reports
// the model itself as unknown (the request never ran in that case).
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", "", domain.AuthError{Msg: "OPENAI_API_KEY belum diset"}
	}

	models := c.Models
	if len(models) == 0 {
		return "", "", domain.InternalError{Msg: "tidak ada model generation yang dikonfigurasi"}
	}

	var lastErr error
	for _, model := range models {
		text, err := c.completeWithModel(ctx, model, systemPrompt, userPrompt)
		if err == nil {
			return text, model, nil
		}
		if isModelUnknown(err) {
			lastErr = err
			continue
		}
		return "", "", err
	}
	return "", "", domain.UpstreamError{Msg: "semua model yang dikonfigurasi tidak tersedia", Err: lastErr}
}

func (c *OpenAIClient) completeWithModel(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxCompletionTokens: maxCompletionTokens,
	})
	if err != nil {
		return "", domain.InternalError{Msg: "gagal encode request generation", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", domain.InternalError{Msg: "gagal membuat request generation", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", domain.UpstreamError{Msg: "gagal menghubungi generation service", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", domain.AuthError{Msg: "API key ditolak generation service", Err: apiError(resp.StatusCode, body)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domain.RateLimitError{Msg: "generation service sedang rate limit", Err: apiError(resp.StatusCode, body)}
	case resp.StatusCode == http.StatusNotFound:
		return "", modelUnknownError{model: model, err: apiError(resp.StatusCode, body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", domain.UpstreamError{Msg: "generation service error", Err: apiError(resp.StatusCode, body)}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domain.UpstreamError{Msg: "response generation tidak bisa diparse", Err: err}
	}

	text := extractText(parsed)
	if text == "" {
		return "", domain.EmptyResponseError{Model: model}
	}
	return text, nil
}

func extractText(resp chatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func apiError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 300 {
		msg = msg[:300]
	}
	return fmt.Errorf("status %d: %s", status, msg)
}

// modelUnknownError is internal to the client; it marks the only condition
// under which the next model in the chain is attempted.
type modelUnknownError struct {
	model string
	err   error
}

func (e modelUnknownError) Error() string {
	return fmt.Sprintf("model %s tidak dikenal: %v", e.model, e.err)
}

func (e modelUnknownError) Unwrap() error { return e.err }

func isModelUnknown(err error) bool {
	_, ok := err.(modelUnknownError)
	return ok
}
