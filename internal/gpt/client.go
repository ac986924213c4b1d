package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Completion-client error classes. The caller decides what to do with
// them; the client itself never retries.
var (
	ErrTimeout   = errors.New("gpt: request deadline exceeded")
	ErrTransport = errors.New("gpt: transport failure")
	ErrUpstream  = errors.New("gpt: upstream returned non-OK status")
	ErrMalformed = errors.New("gpt: malformed completion response")
)

// RequestTimeout bounds a single completion round-trip
const RequestTimeout = 30 * time.Second

// Completer produces a model reply for a composed prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client is a stateless wrapper around the YandexGPT completion endpoint
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	modelURI   string
	logger     *zap.Logger
}

// NewClient creates a completion client for the given folder and model
func NewClient(url, apiKey, folderID, model string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: RequestTimeout},
		url:        url,
		apiKey:     apiKey,
		modelURI:   fmt.Sprintf("gpt://%s/%s", folderID, model),
		logger:     logger,
	}
}

type completionRequest struct {
	ModelURI          string            `json:"modelUri"`
	CompletionOptions completionOptions `json:"completionOptions"`
	Messages          []requestMessage  `json:"messages"`
}

type completionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   string  `json:"maxTokens"`
}

type requestMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type completionResponse struct {
	Result *struct {
		Alternatives []struct {
			Text    string `json:"text"`
			Message *struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"alternatives"`
	} `json:"result"`
}

// Complete sends one non-streaming completion request and returns the
// first alternative's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Info("Sending completion request", zap.Int("prompt_len", len(prompt)))

	body, err := json.Marshal(completionRequest{
		ModelURI: c.modelURI,
		CompletionOptions: completionOptions{
			Stream:      false,
			Temperature: 0.6,
			MaxTokens:   "2000",
		},
		Messages: []requestMessage{{Role: "user", Text: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Completion request rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if parsed.Result == nil || len(parsed.Result.Alternatives) == 0 {
		return "", fmt.Errorf("%w: no alternatives in result", ErrMalformed)
	}

	alt := parsed.Result.Alternatives[0]
	answer := alt.Text
	if answer == "" && alt.Message != nil {
		answer = alt.Message.Text
	}

	c.logger.Info("Completion response received", zap.Int("answer_len", len(answer)))
	return answer, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
