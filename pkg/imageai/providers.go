package imageai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	openAIURL     = "https://api.openai.com/v1/images/generations"
	stabilityURL  = "https://api.stability.ai/v2beta/stable-image/generate/core"
	replicateURL  = "https://api.replicate.com/v1/predictions"
	replicateSDXL = "stability-ai/sdxl"

	maxImageBytes = 20 << 20
)

var ErrNoImage = errors.New("provider returned no image")

// Provider turns a prompt into encoded image bytes and a file extension.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) ([]byte, string, error)
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

type OpenAI struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{APIKey: apiKey, BaseURL: openAIURL, Model: "gpt-image-1", HTTP: defaultHTTPClient()}
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	body, err := json.Marshal(map[string]string{
		"model":  p.Model,
		"prompt": prompt,
		"size":   "1536x1024",
	})
	if err != nil {
		return nil, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	respBody, err := doRequest(p.HTTP, req)
	if err != nil {
		return nil, "", fmt.Errorf("openai: %w", err)
	}

	var out struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
		return nil, "", fmt.Errorf("openai: %w", ErrNoImage)
	}
	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, "", fmt.Errorf("openai: decode image: %w", err)
	}
	return img, extensionFor(img), nil
}

type Stability struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewStability(apiKey string) *Stability {
	return &Stability{APIKey: apiKey, BaseURL: stabilityURL, HTTP: defaultHTTPClient()}
}

func (p *Stability) Name() string { return "stability" }

func (p *Stability) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	for k, v := range map[string]string{"prompt": prompt, "output_format": "webp", "aspect_ratio": "16:9"} {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, &form)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Accept", "image/*")

	img, err := doRequest(p.HTTP, req)
	if err != nil {
		return nil, "", fmt.Errorf("stability: %w", err)
	}
	if len(img) == 0 {
		return nil, "", fmt.Errorf("stability: %w", ErrNoImage)
	}
	return img, extensionFor(img), nil
}

// Replicate creates a prediction with Prefer: wait so the output URL is
// available in the first response, then downloads it.
type Replicate struct {
	Token   string
	BaseURL string
	Version string
	HTTP    *http.Client
}

func NewReplicate(token string) *Replicate {
	return &Replicate{Token: token, BaseURL: replicateURL, Version: replicateSDXL, HTTP: defaultHTTPClient()}
}

func (p *Replicate) Name() string { return "replicate" }

func (p *Replicate) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	body, err := json.Marshal(map[string]any{
		"version": p.Version,
		"input":   map[string]any{"prompt": prompt, "width": 1024, "height": 576},
	})
	if err != nil {
		return nil, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+p.Token)
	req.Header.Set("Prefer", "wait")

	respBody, err := doRequest(p.HTTP, req)
	if err != nil {
		return nil, "", fmt.Errorf("replicate: %w", err)
	}

	var out struct {
		Status string   `json:"status"`
		Output []string `json:"output"`
		Error  any      `json:"error"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, "", fmt.Errorf("replicate: decode response: %w", err)
	}
	if out.Error != nil {
		return nil, "", fmt.Errorf("replicate: prediction failed: %v", out.Error)
	}
	if len(out.Output) == 0 || strings.TrimSpace(out.Output[0]) == "" {
		return nil, "", fmt.Errorf("replicate: %w", ErrNoImage)
	}

	imgReq, err := http.NewRequestWithContext(ctx, http.MethodGet, out.Output[0], nil)
	if err != nil {
		return nil, "", err
	}
	img, err := doRequest(p.HTTP, imgReq)
	if err != nil {
		return nil, "", fmt.Errorf("replicate: download output: %w", err)
	}
	return img, extensionFor(img), nil
}

// ProviderFromKeys returns the first provider with a configured key, in
// OpenAI, Stability, Replicate order, or nil.
func ProviderFromKeys(openAIKey, stabilityKey, replicateToken string) Provider {
	switch {
	case openAIKey != "":
		return NewOpenAI(openAIKey)
	case stabilityKey != "":
		return NewStability(stabilityKey)
	case replicateToken != "":
		return NewReplicate(replicateToken)
	}
	return nil
}

func doRequest(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return body, nil
}

func extensionFor(img []byte) string {
	switch http.DetectContentType(img) {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	}
	return "png"
}
