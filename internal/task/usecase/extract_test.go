package usecase

import (
	"testing"
)

func TestExtractReply(t *testing.T) {
	t.Run("Plain JSON Object", func(t *testing.T) {
		parsed, ok := extractReply(`{"title":"Buy milk","description":"Buy milk","due_date":"2026-09-01T10:00:00Z"}`)
		if !ok {
			t.Fatalf("expected parse to succeed")
		}
		if parsed["title"] != "Buy milk" {
			t.Errorf("unexpected title: %v", parsed["title"])
		}
	})

	t.Run("JSON Fence Stripped", func(t *testing.T) {
		raw := "```json\n{\"error\":\"Input is not a valid task request\"}\n```"
		parsed, ok := extractReply(raw)
		if !ok {
			t.Fatalf("expected fenced JSON to parse")
		}
		if parsed["error"] != "Input is not a valid task request" {
			t.Errorf("unexpected error field: %v", parsed["error"])
		}
	})

	t.Run("Uppercase Fence Stripped", func(t *testing.T) {
		raw := "```JSON\n{\"title\":\"x\"}\n```"
		if _, ok := extractReply(raw); !ok {
			t.Errorf("expected case-insensitive fence handling")
		}
	})

	t.Run("Bare Fence Stripped", func(t *testing.T) {
		raw := "```\n{\"title\":\"x\"}\n```"
		if _, ok := extractReply(raw); !ok {
			t.Errorf("expected bare fence handling")
		}
	})

	t.Run("Surrounding Whitespace", func(t *testing.T) {
		if _, ok := extractReply("  \n {\"title\":\"x\"} \n "); !ok {
			t.Errorf("expected whitespace-padded JSON to parse")
		}
	})

	t.Run("Not JSON", func(t *testing.T) {
		if _, ok := extractReply("Sure! Here is your task: buy milk tomorrow."); ok {
			t.Errorf("expected prose reply to fail parsing")
		}
	})

	t.Run("JSON Array Rejected", func(t *testing.T) {
		if _, ok := extractReply(`[{"title":"x"}]`); ok {
			t.Errorf("expected non-object JSON to fail parsing")
		}
	})

	t.Run("Truncated JSON", func(t *testing.T) {
		if _, ok := extractReply(`{"title":"Buy mi`); ok {
			t.Errorf("expected truncated JSON to fail parsing")
		}
	})
}
