package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hello back  "}}]}`))
	}))
	defer server.Close()

	client := NewClient("gsk-test", "llama-3.3-70b-versatile")
	client.SetBaseURL(server.URL)

	reply, err := client.Chat(context.Background(), []Message{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello back", reply, "reply should be trimmed")
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestCompleteSendsSingleUserMessage(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewClient("gsk-test", "llama-3.3-70b-versatile")
	client.SetBaseURL(server.URL)

	reply, err := client.Complete(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)

	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "summarize this", got.Messages[0].Content)
}

func TestChatErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient("gsk-test", "llama-3.3-70b-versatile")
	client.SetBaseURL(server.URL)

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed with status 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("gsk-test", "llama-3.3-70b-versatile")
	client.SetBaseURL(server.URL)

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices in response")
}

func TestSetModel(t *testing.T) {
	client := NewClient("gsk-test", "llama-3.3-70b-versatile")
	assert.Equal(t, "llama-3.3-70b-versatile", client.Model())

	client.SetModel("llama-3.1-8b-instant")
	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
}
