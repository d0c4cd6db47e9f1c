package agent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/mr"

	"researcher-api/pkg/llm"
)

const taskPrefix = "task: "

// Option customises a Selector.
type Option func(*Selector)

// WithModel sets the "provider:model" used for selection.
func WithModel(spec string) Option {
	return func(s *Selector) {
		if spec != "" {
			s.provider, s.model = llm.ParseModelSpec(spec)
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Selector) { s.temperature = t }
}

// WithKwargs forwards extra provider fields on every call.
func WithKwargs(kwargs map[string]any) Option {
	return func(s *Selector) { s.kwargs = kwargs }
}

// WithLogger sets the logger used for parse and transport failures.
func WithLogger(logger llm.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUsageCallback receives token usage for each completed call.
func WithUsageCallback(fn func(llm.Usage)) Option {
	return func(s *Selector) { s.onUsage = fn }
}

// WithParser replaces the default strict/lenient/extract chain.
func WithParser(p *Parser) Option {
	return func(s *Selector) { s.parser = p }
}

// WithConfig applies model, temperature, kwargs and worker bound from cfg.
func WithConfig(cfg *Config) Option {
	return func(s *Selector) {
		if cfg == nil {
			return
		}
		if cfg.Model != "" {
			s.provider, s.model = cfg.Provider, cfg.Model
		}
		s.temperature = cfg.Temperature
		s.kwargs = cfg.LLMKwargs
		if cfg.MaxSubtopics > 0 {
			s.workers = cfg.MaxSubtopics
		}
	}
}

// Selector asks a model which persona should handle a task.
type Selector struct {
	complete     llm.CompletionFunc
	instructions string

	provider    string
	model       string
	temperature float64
	kwargs      map[string]any
	workers     int
	onUsage     func(llm.Usage)

	parser *Parser
	logger llm.Logger
	nowFn  func() time.Time
}

// NewSelector builds a Selector that sends instructions as the system prompt.
func NewSelector(complete llm.CompletionFunc, instructions string, opts ...Option) (*Selector, error) {
	if complete == nil {
		return nil, errors.New("agent: completion function cannot be nil")
	}
	s := &Selector{
		complete:     complete,
		instructions: instructions,
		temperature:  defaultTemperature,
		workers:      defaultMaxSubtopics,
		logger:       llm.DefaultLogger(),
		nowFn:        time.Now,
	}
	s.provider, s.model = llm.ParseModelSpec(defaultSmartLLM)
	for _, opt := range opts {
		opt(s)
	}
	if s.parser == nil {
		s.parser = NewParser(s.logger)
	}
	return s, nil
}

// Choose returns the persona for query. It never fails: unusable replies and
// failed calls yield the fallback persona.
func (s *Selector) Choose(ctx context.Context, query, parent string) Record {
	return s.Select(ctx, query, parent).Record
}

// Select is Choose with the raw reply, the stage that produced the record and timing.
func (s *Selector) Select(ctx context.Context, query, parent string) Selection {
	q := NewQuery(query, parent)
	sel := Selection{
		ID:      uuid.NewString(),
		Query:   q,
		Started: s.nowFn(),
	}

	text, err := s.complete(ctx, s.request(q))
	sel.Raw = RawResponse{Text: text, Err: err}
	if err != nil {
		s.logger.Error(ctx, err, llm.Fields{
			"selection_id": sel.ID,
			"model":        s.model,
			"provider":     s.provider,
			"query":        q.String(),
		})
	}

	sel.Record, sel.Stage = s.parser.Parse(ctx, text)
	sel.Duration = s.nowFn().Sub(sel.Started)
	s.logger.Info(ctx, "agent chosen", llm.Fields{
		"selection_id": sel.ID,
		"agent":        sel.Record.Name,
		"stage":        sel.Stage,
		"duration_ms":  sel.Duration.Milliseconds(),
	})
	return sel
}

// ChooseForSubtopics selects a persona for each subtopic of parent
// concurrently. Results keep the order of subtopics.
func (s *Selector) ChooseForSubtopics(ctx context.Context, parent string, subtopics []string) []Selection {
	out := make([]Selection, len(subtopics))
	if len(subtopics) == 0 {
		return out
	}
	mr.ForEach(func(source chan<- int) {
		for i := range subtopics {
			source <- i
		}
	}, func(i int) {
		out[i] = s.Select(ctx, subtopics[i], parent)
	}, mr.WithWorkers(s.workers))
	return out
}

func (s *Selector) request(q Query) llm.CompletionRequest {
	return llm.CompletionRequest{
		Model:    s.model,
		Provider: s.provider,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: s.instructions},
			{Role: llm.RoleUser, Content: taskPrefix + q.String()},
		},
		Temperature: s.temperature,
		Kwargs:      s.kwargs,
		OnUsage:     s.onUsage,
	}
}

// ChooseAgent is a one-shot Choose. It panics when complete is nil.
func ChooseAgent(ctx context.Context, query, parent, instructions string, complete llm.CompletionFunc, opts ...Option) Record {
	s, err := NewSelector(complete, instructions, opts...)
	if err != nil {
		panic(err)
	}
	return s.Choose(ctx, query, parent)
}
