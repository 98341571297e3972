package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// recoverStrategy extracts a JSON candidate from a raw model reply.
// Strategies are tried in order; the first whose candidate parses wins.
type recoverStrategy func(raw string) (string, bool)

var recoverStrategies = []recoverStrategy{
	fromFencedBlock,
	fromWholeString,
}

// RecoverJSON recovers a JSON document from a model's free-form text reply.
// The model is prompted to wrap output in a ```json fence but is defended
// against deviation: preamble text, missing fences, or malformed JSON all
// yield (nil, false) instead of an error.
func RecoverJSON(raw string) (json.RawMessage, bool) {
	for _, strategy := range recoverStrategies {
		candidate, ok := strategy(raw)
		if !ok {
			continue
		}
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), true
		}
	}
	return nil, false
}

func fromFencedBlock(raw string) (string, bool) {
	match := fencedJSONPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func fromWholeString(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
