package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.APIKey = "sk-test"
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return cfg
}

func candidateResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}],"modelVersion":"gemini-2.5-flash"}`
}

func mustJSON(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestClient_Generate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, candidateResponse("Murid ini menunjukkan prestasi cemerlang."))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReport, Prompt: "tulis ulasan"})
	require.NoError(t, err)
	assert.Equal(t, "Murid ini menunjukkan prestasi cemerlang.", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "sk-test", gotKey)

	var body generateContentRequest
	require.NoError(t, json.Unmarshal(gotBody, &body))
	require.Len(t, body.Contents, 1)
	assert.Equal(t, "tulis ulasan", body.Contents[0].Parts[0].Text)
	require.NotNil(t, body.GenerationConfig)
	assert.Equal(t, 0.4, body.GenerationConfig.Temperature)
	assert.Equal(t, 512, body.GenerationConfig.MaxOutputTokens)
}

func TestClient_Generate_MissingAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := NewClient(cfg, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "hai"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "hai"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestClient_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "hai"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, candidateResponse("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "hai"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestClient_Generate_RequestOverridesTaskDefaults(t *testing.T) {
	var body generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		io.WriteString(w, candidateResponse("ok"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	temp := 0.9
	maxTok := 64
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:        TaskChat,
		Prompt:      "hai",
		Temperature: &temp,
		MaxTokens:   &maxTok,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.9, body.GenerationConfig.Temperature)
	assert.Equal(t, 64, body.GenerationConfig.MaxOutputTokens)
}

func TestClient_Generate_ObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, candidateResponse("ok"))
	}))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewClient(testConfig(srv.URL), observer)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReport, Prompt: "hai"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, TaskReport, events[0].Task)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
