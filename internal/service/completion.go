package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// completionsURL is a var so tests can point the client at a local server.
var completionsURL = "https://api.openai.com/v1/chat/completions"

const completionModel = "gpt-4o-mini"

// The upstream call had no timeout in the original service; the client-level
// timeout bounds it in addition to the request context.
var completionClient = &http.Client{Timeout: 30 * time.Second}

// ChatMessage is one entry of the caller-supplied conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletion forwards the message list to the upstream completion API and
// returns the upstream status code and raw body. A transport or timeout
// failure returns an error; upstream HTTP errors are the caller's to relay.
func ChatCompletion(ctx context.Context, apiKey string, messages []ChatMessage) (int, []byte, error) {
	payload, err := json.Marshal(map[string]any{
		"model":    completionModel,
		"messages": messages,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("ChatCompletion: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("ChatCompletion: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := completionClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("ChatCompletion: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("ChatCompletion: %w", err)
	}
	return resp.StatusCode, body, nil
}
