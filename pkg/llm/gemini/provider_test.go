package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"educonnect-be/pkg/llm"
)

func newTestProvider(url string) *GeminiProvider {
	p := NewGeminiProvider("test-key", "gemini-2.5-flash", 5*time.Second)
	p.BaseURL = url
	return p
}

func TestChatSendsHistoryAndReturnsText(t *testing.T) {
	var got geminiRequest
	var gotPath, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{{Text: "hello back"}}},
			}},
		})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "hello back" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if gotPath != "/v1/models/gemini-2.5-flash:generateContent" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected api key header: %s", gotKey)
	}
	if len(got.Contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(got.Contents))
	}
	if got.Contents[0].Role != "user" || got.Contents[1].Role != "model" {
		t.Errorf("role mapping wrong: %s, %s", got.Contents[0].Role, got.Contents[1].Role)
	}
}

func TestChatEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	reply, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "" {
		t.Errorf("expected empty reply, got %q", reply)
	}
}

func TestChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}}); err == nil {
		t.Fatal("expected an error on non-200 status")
	}
}

func TestGenerateWrapsPromptAsUserTurn(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{{Text: "ok"}}},
			}},
		})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.Generate(context.Background(), "a single prompt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Contents) != 1 || got.Contents[0].Role != "user" {
		t.Fatalf("expected one user content, got %+v", got.Contents)
	}
	if got.Contents[0].Parts[0].Text != "a single prompt" {
		t.Errorf("unexpected prompt text: %q", got.Contents[0].Parts[0].Text)
	}
}
