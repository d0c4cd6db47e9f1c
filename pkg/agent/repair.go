package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var errEmptyInput = errors.New("lenient: empty response")

// Repair turns near-JSON model output into Go values (map[string]any, []any,
// string, float64, bool, nil) using jsonrepair. A surrounding markdown code
// fence is dropped first. The text must then start with '{' or '[': prose
// around an object is left to the extraction stage.
func Repair(raw string) (any, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, errEmptyInput
	}
	if c := text[0]; c != '{' && c != '[' {
		return nil, fmt.Errorf("lenient: expected '{' or '[', found %q", c)
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, fmt.Errorf("lenient: %w", err)
	}
	var value any
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, fmt.Errorf("lenient: decode repaired text: %w", err)
	}
	return value, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
