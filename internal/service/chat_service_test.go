package service

import (
	"strings"
	"testing"
	"time"

	"educonnect-be/internal/dto"
	"educonnect-be/internal/entity"
)

func strPtr(s string) *string {
	return &s
}

func TestDeriveTitle(t *testing.T) {
	exactly50 := strings.Repeat("a", 50)
	sixty := strings.Repeat("b", 60)

	tests := []struct {
		name     string
		title    *string
		messages []entity.ChatMessage
		want     string
	}{
		{
			name:     "explicit title wins",
			title:    strPtr("My Chat"),
			messages: []entity.ChatMessage{{Role: "user", Content: "hello"}},
			want:     "My Chat",
		},
		{
			name:     "blank title falls through to opening user message",
			title:    strPtr("   "),
			messages: []entity.ChatMessage{{Role: "user", Content: "hello"}},
			want:     "hello",
		},
		{
			name:     "short user message kept verbatim",
			messages: []entity.ChatMessage{{Role: "user", Content: "What are the fees?"}},
			want:     "What are the fees?",
		},
		{
			name:     "exactly 50 chars gets no ellipsis",
			messages: []entity.ChatMessage{{Role: "user", Content: exactly50}},
			want:     exactly50,
		},
		{
			name:     "long message truncated to 50 plus ellipsis",
			messages: []entity.ChatMessage{{Role: "user", Content: sixty}},
			want:     strings.Repeat("b", 50) + "...",
		},
		{
			name: "assistant-opened transcript falls back even with later user turns",
			messages: []entity.ChatMessage{
				{Role: "assistant", Content: "Hi, how can I help?"},
				{Role: "user", Content: "Library hours?"},
			},
			want: "New Chat",
		},
		{
			name:     "assistant-only transcript falls back",
			messages: []entity.ChatMessage{{Role: "assistant", Content: "welcome"}},
			want:     "New Chat",
		},
		{
			name: "empty transcript falls back",
			want: "New Chat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveTitle(tt.title, tt.messages)
			if got != tt.want {
				t.Errorf("deriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title *string
		want  string
	}{
		{name: "explicit title wins", title: strPtr("Renamed"), want: "Renamed"},
		{name: "missing title gets fixed rename", want: "Updated Chat"},
		{name: "blank title gets fixed rename", title: strPtr("  "), want: "Updated Chat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := updateTitle(tt.title); got != tt.want {
				t.Errorf("updateTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessagesFromDTODefaultsTimestamp(t *testing.T) {
	before := time.Now()
	out := messagesFromDTO([]dto.ChatMessageDTO{
		{Role: "user", Content: "hello"},
	})
	after := time.Now()

	if len(out) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out))
	}
	if out[0].Timestamp.Before(before) || out[0].Timestamp.After(after) {
		t.Errorf("expected defaulted timestamp between %v and %v, got %v", before, after, out[0].Timestamp)
	}
}

func TestMessagesFromDTOKeepsGivenTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := messagesFromDTO([]dto.ChatMessageDTO{
		{Role: "user", Content: "hello", Timestamp: &ts},
	})

	if !out[0].Timestamp.Equal(ts) {
		t.Errorf("expected timestamp %v, got %v", ts, out[0].Timestamp)
	}
}

func TestMessagesRoundTripPreservesOrder(t *testing.T) {
	ts := time.Now()
	in := []dto.ChatMessageDTO{
		{Role: "user", Content: "first", Timestamp: &ts},
		{Role: "assistant", Content: "second", Timestamp: &ts},
		{Role: "user", Content: "third", Timestamp: &ts},
	}

	out := messagesToDTO(messagesFromDTO(in))
	if len(out) != len(in) {
		t.Fatalf("expected %d messages, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Role != in[i].Role || out[i].Content != in[i].Content {
			t.Errorf("message %d: got (%s, %q), want (%s, %q)", i, out[i].Role, out[i].Content, in[i].Role, in[i].Content)
		}
	}
}
