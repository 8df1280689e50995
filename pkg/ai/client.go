package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-api/pkg/ai/formatters"
)

const defaultAttempts = 3

// Client calls a text-generation inference endpoint that accepts
// {"inputs", "parameters"} and answers with [{"generated_text"}].
type Client struct {
	BaseURL   string
	Token     string
	HTTP      *http.Client
	Attempts  int
	Backoff   time.Duration
	Logger    *slog.Logger
	formatter *formatters.PostFormatter
}

func NewClient(baseURL string, token string) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Token:     token,
		HTTP:      &http.Client{Timeout: 60 * time.Second},
		Attempts:  defaultAttempts,
		Backoff:   time.Second,
		Logger:    slog.Default(),
		formatter: formatters.NewPostFormatter(),
	}
}

type generationParameters struct {
	MaxLength         int     `json:"max_length"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	ReturnFullText    bool    `json:"return_full_text"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	PresencePenalty   float64 `json:"presence_penalty"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
}

// CreatePrompt wraps the author's request in the blog-writing brief.
func CreatePrompt(userPrompt string) string {
	return `You are a senior tech blogger and web development expert. Write an engaging, technical yet accessible blog post.

User's Request: "` + userPrompt + `"

Writing Guidelines:
- Create content that is both technical and engaging
- Include specific examples and code snippets where relevant
- Focus on practical applications and real-world use cases
- Consider current industry trends and future implications

Structure:
- Start with an attention-grabbing introduction
- Break down complex concepts into digestible sections
- End with actionable takeaways or conclusions

Format as:
Title: [Create an SEO-friendly, specific title]

[Write structured content in markdown with clear sections, examples, and technical insights]`
}

// GenerateBlogPost requests a post for prompt and parses it into a draft.
func (c *Client) GenerateBlogPost(ctx context.Context, prompt string) (*formatters.PostDraft, error) {
	fullPrompt := CreatePrompt(prompt)
	body, err := json.Marshal(generationRequest{
		Inputs: fullPrompt,
		Parameters: generationParameters{
			MaxLength:         2000,
			Temperature:       0.8,
			TopP:              0.9,
			ReturnFullText:    true,
			RepetitionPenalty: 1.2,
			PresencePenalty:   0.6,
		},
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.doPostWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("text generation response", "status", resp.StatusCode, "bytes", len(respBytes))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("text generation returned status %d", resp.StatusCode)
	}

	text, err := parseGeneratedText(respBytes)
	if err != nil {
		return nil, err
	}

	return c.formatter.Format(text, fullPrompt)
}

// parseGeneratedText accepts both the list and the single-object shapes.
func parseGeneratedText(b []byte) (string, error) {
	var list []generationResult
	if err := json.Unmarshal(b, &list); err == nil {
		if len(list) == 0 {
			return "", formatters.ErrEmptyOutput
		}
		return list[0].GeneratedText, nil
	}

	var single struct {
		generationResult
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &single); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if single.Error != "" {
		return "", errors.New("text generation error: " + single.Error)
	}
	return single.GeneratedText, nil
}

// doPostWithRetry retries transport failures and 429/5xx answers with
// exponential backoff, giving up early when ctx is done.
func (c *Client) doPostWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("text generation returned status %d", resp.StatusCode)
		default:
			return resp, nil
		}

		if i < attempts-1 {
			backoff := c.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
