package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"researcher-api/pkg/llm"
)

// Stage names reported in Selection.Stage.
const (
	StageStrict   = "strict"
	StageLenient  = "lenient"
	StageExtract  = "extract"
	StageFallback = "fallback"
)

const (
	fieldName       = "server"
	fieldRolePrompt = "agent_role_prompt"
)

var (
	// ErrNotObject is returned when the text does not hold a JSON object.
	ErrNotObject = errors.New("agent: response is not a JSON object")
	// ErrMissingFields is returned when the object lacks a usable name or role prompt.
	ErrMissingFields = errors.New("agent: response is missing server or agent_role_prompt")
	// ErrNoObjectSpan is returned when no {...} span exists in the text.
	ErrNoObjectSpan = errors.New("agent: no {...} span in response")
)

// objectSpan matches from the first '{' to the nearest '}' after it. Nested
// objects get truncated at their first closing brace.
var objectSpan = regexp.MustCompile(`(?s)\{.*?\}`)

// StageFunc turns raw model text into a Record or explains why it could not.
type StageFunc func(raw string) (Record, error)

// Stage is a named step of the parse chain.
type Stage struct {
	Name  string
	Parse StageFunc
}

// DefaultStages returns the strict, lenient and extraction stages in order.
func DefaultStages() []Stage {
	return []Stage{
		{Name: StageStrict, Parse: ParseStrict},
		{Name: StageLenient, Parse: ParseLenient},
		{Name: StageExtract, Parse: ParseExtracted},
	}
}

// ParseStrict decodes raw as exactly one JSON object.
func ParseStrict(raw string) (Record, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return Record{}, fmt.Errorf("strict decode: %w", err)
	}
	if obj == nil {
		return Record{}, ErrNotObject
	}
	return recordFromObject(obj)
}

// ParseLenient repairs near-JSON (single quotes, bare keys, missing or
// trailing commas, comments, unclosed brackets, code fences) and reads the
// record from the result. Any fault raised while repairing is reported as an
// error.
func ParseLenient(raw string) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = Record{}, fmt.Errorf("lenient repair panicked: %v", r)
		}
	}()

	value, err := Repair(raw)
	if err != nil {
		return Record{}, err
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return Record{}, ErrNotObject
	}
	return recordFromObject(obj)
}

// ParseExtracted strictly decodes the first {...} span found in raw.
func ParseExtracted(raw string) (Record, error) {
	span := ExtractObjectSpan(raw)
	if span == "" {
		return Record{}, ErrNoObjectSpan
	}
	rec, err := ParseStrict(span)
	if err != nil {
		return Record{}, fmt.Errorf("extracted span %q: %w", span, err)
	}
	return rec, nil
}

// ExtractObjectSpan returns the first '{' through the nearest following '}', or "".
func ExtractObjectSpan(raw string) string {
	return objectSpan.FindString(raw)
}

func recordFromObject(obj map[string]any) (Record, error) {
	name, _ := obj[fieldName].(string)
	role, _ := obj[fieldRolePrompt].(string)
	rec := Record{Name: name, RolePrompt: role}
	if !rec.Valid() {
		return Record{}, ErrMissingFields
	}
	return rec, nil
}

// Parser runs stages in order and stops at the first success.
type Parser struct {
	stages []Stage
	logger llm.Logger
}

// NewParser builds a Parser. With no stages it uses DefaultStages.
func NewParser(logger llm.Logger, stages ...Stage) *Parser {
	if logger == nil {
		logger = llm.DefaultLogger()
	}
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	return &Parser{stages: stages, logger: logger}
}

// Parse returns the first record any stage produces and the stage's name, or
// the fallback record and StageFallback. Failures are logged, never returned.
func (p *Parser) Parse(ctx context.Context, raw string) (Record, string) {
	for _, stage := range p.stages {
		rec, err := stage.Parse(raw)
		if err == nil {
			return rec, stage.Name
		}
		p.logger.Warn(ctx, "agent response stage failed", llm.Fields{
			"stage": stage.Name,
			"error": err.Error(),
			"raw":   raw,
		})
	}
	p.logger.Warn(ctx, "no usable agent in response, falling back to default agent", llm.Fields{
		"raw_len": len(strings.TrimSpace(raw)),
	})
	return Fallback(), StageFallback
}
