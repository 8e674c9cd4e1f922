package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/assistant"
	"github.com/pkordes/travel-tracker/internal/domain"
)

// fakeCompletions serves /v1/chat/completions with the given status and body,
// recording the last user message it received.
func fakeCompletions(t *testing.T, status int, body string, gotPrompt *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && len(req.Messages) > 0 && gotPrompt != nil {
			*gotPrompt = req.Messages[len(req.Messages)-1].Content
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(srv *httptest.Server) *assistant.OpenAIGateway {
	return assistant.NewOpenAIGateway(assistant.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

const okBody = `{"id":"c1","object":"chat.completion","model":"test-model",
"choices":[{"index":0,"message":{"role":"assistant","content":"- Visit the Alhambra\n"},"finish_reason":"stop"}]}`

func TestBuildPrompt_UserTextFirst(t *testing.T) {
	got := assistant.BuildPrompt("Where should I go in Spain?", "food")

	assert.True(t, strings.HasPrefix(got, "Where should I go in Spain?\n\n"))
	assert.Contains(t, got, "focused on the following interest: food.")
	assert.Contains(t, got, "18-25 years old in Europe")
}

func TestOpenAIGateway_Ask_OK(t *testing.T) {
	var prompt string
	srv := fakeCompletions(t, http.StatusOK, okBody, &prompt)

	got, err := newGateway(srv).Ask(context.Background(), "Granada tips", "history")

	require.NoError(t, err)
	assert.Equal(t, "- Visit the Alhambra", got)
	assert.Equal(t, assistant.BuildPrompt("Granada tips", "history"), prompt)
}

func TestOpenAIGateway_Ask_ServerError(t *testing.T) {
	srv := fakeCompletions(t, http.StatusInternalServerError,
		`{"error":{"message":"quota exceeded","type":"server_error"}}`, nil)

	_, err := newGateway(srv).Ask(context.Background(), "hi", "")

	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestOpenAIGateway_Ask_NoChoices(t *testing.T) {
	srv := fakeCompletions(t, http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[]}`, nil)

	_, err := newGateway(srv).Ask(context.Background(), "hi", "")

	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestOpenAIGateway_Ask_BlankContent(t *testing.T) {
	srv := fakeCompletions(t, http.StatusOK,
		`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  "}}]}`, nil)

	got, err := newGateway(srv).Ask(context.Background(), "hi", "")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenAIGateway_Ask_Unreachable(t *testing.T) {
	srv := fakeCompletions(t, http.StatusOK, okBody, nil)
	gw := newGateway(srv)
	srv.Close()

	_, err := gw.Ask(context.Background(), "hi", "")

	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestOpenAIGateway_Ask_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	gw := assistant.NewOpenAIGateway(assistant.Config{
		BaseURL: srv.URL + "/v1",
		Timeout: 50 * time.Millisecond,
	})

	_, err := gw.Ask(context.Background(), "hi", "")

	assert.ErrorIs(t, err, domain.ErrGateway)
}
