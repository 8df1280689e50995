// Package aitest provides a fake text-generation endpoint for tests and
// local development.
package aitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const DefaultReply = `Title: Getting Started with Edge Rendering

Edge rendering moves work closer to the reader.

## Why it matters

Lower latency and fewer cold starts.

` + "```ts\nexport default defineEventHandler(() => 'ok')\n```"

// Handler answers inference requests with a canned generation. When Echo
// is set, the request inputs are prepended as a full-text model would.
type Handler struct {
	Reply  string
	Status int
	Echo   bool

	mu      sync.Mutex
	prompts []string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, _ := io.ReadAll(r.Body)
	var req struct {
		Inputs string `json:"inputs"`
	}
	if err := json.Unmarshal(body, &req); err != nil || strings.TrimSpace(req.Inputs) == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.prompts = append(h.prompts, req.Inputs)
	h.mu.Unlock()

	if h.Status != 0 && h.Status != http.StatusOK {
		w.WriteHeader(h.Status)
		_, _ = w.Write([]byte(`{"error":"mock failure"}`))
		return
	}

	reply := h.Reply
	if reply == "" {
		reply = DefaultReply
	}
	if h.Echo {
		reply = req.Inputs + "\n" + reply
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]map[string]string{{"generated_text": reply}})
}

// Calls reports how many well-formed requests were received.
func (h *Handler) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.prompts)
}

// Prompts returns the inputs received so far.
func (h *Handler) Prompts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.prompts...)
}

// NewServer starts an httptest server backed by h.
func NewServer(h *Handler) *httptest.Server {
	return httptest.NewServer(h)
}
