package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatCompletionPassesThrough(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	orig := completionsURL
	completionsURL = srv.URL
	t.Cleanup(func() { completionsURL = orig })

	status, body, err := ChatCompletion(context.Background(), "key-1", []ChatMessage{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"choices":[]}`, string(body))
	require.Equal(t, "Bearer key-1", gotAuth)
	require.Equal(t, completionModel, gotBody["model"])
}

func TestChatCompletionUpstreamErrorBody(t *testing.T) {
	// upstream HTTP errors are not an error here; status and body come back
	// verbatim for the caller to relay
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	orig := completionsURL
	completionsURL = srv.URL
	t.Cleanup(func() { completionsURL = orig })

	status, body, err := ChatCompletion(context.Background(), "k", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.Contains(t, string(body), "rate limited")
}

func TestChatCompletionTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	orig := completionsURL
	completionsURL = srv.URL
	t.Cleanup(func() { completionsURL = orig })

	_, _, err := ChatCompletion(context.Background(), "k", nil)
	require.Error(t, err)
}
