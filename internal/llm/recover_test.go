package llm

import (
	"encoding/json"
	"testing"
)

func TestRecoverJSONFencedBlock(t *testing.T) {
	raw, ok := RecoverJSON("```json\n{\"a\":1}\n```")
	if !ok {
		t.Fatalf("expected recovery to succeed")
	}
	assertSingleKey(t, raw, "a", 1)
}

func TestRecoverJSONFencedBlockWithPreamble(t *testing.T) {
	raw, ok := RecoverJSON("Here is the analysis you asked for:\n```json\n{\"a\":1}\n```\nLet me know if you need anything else.")
	if !ok {
		t.Fatalf("expected recovery to succeed")
	}
	assertSingleKey(t, raw, "a", 1)
}

func TestRecoverJSONRawString(t *testing.T) {
	raw, ok := RecoverJSON("{\"a\":1}")
	if !ok {
		t.Fatalf("expected recovery to succeed")
	}
	assertSingleKey(t, raw, "a", 1)
}

func TestRecoverJSONNotJSON(t *testing.T) {
	if raw, ok := RecoverJSON("not json"); ok {
		t.Fatalf("expected recovery to fail, got %s", raw)
	}
}

func TestRecoverJSONEmptyString(t *testing.T) {
	if _, ok := RecoverJSON(""); ok {
		t.Fatalf("expected recovery to fail on empty input")
	}
}

func TestRecoverJSONMalformedFence(t *testing.T) {
	if _, ok := RecoverJSON("```json\n{broken\n```"); ok {
		t.Fatalf("expected recovery to fail on malformed fenced JSON")
	}
}

func assertSingleKey(t *testing.T, raw json.RawMessage, key string, want float64) {
	t.Helper()
	var parsed map[string]float64
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal recovered JSON: %v", err)
	}
	if parsed[key] != want {
		t.Fatalf("expected %s=%v, got %v", key, want, parsed)
	}
}
