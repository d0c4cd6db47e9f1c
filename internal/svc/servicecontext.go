package svc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"researcher-api/internal/config"
	"researcher-api/internal/repo"
	agentpkg "researcher-api/pkg/agent"
	"researcher-api/pkg/journal"
	llmpkg "researcher-api/pkg/llm"
	promptpkg "researcher-api/pkg/prompt"
)

// ErrOffline is returned by the completion used when no LLM is configured.
var ErrOffline = errors.New("svc: no llm configured")

type ServiceContext struct {
	Config config.Config

	LLMConfig    *llmpkg.Config
	LLMClient    llmpkg.LLMClient
	AgentConfig  *agentpkg.Config
	PromptFamily *promptpkg.TemplateFamily
	Selector     *agentpkg.Selector
	// Journal is nil when no journal directory is configured.
	Journal *journal.Writer

	// DBConn and Repos are nil unless Postgres.DSN is set.
	DBConn sqlx.SqlConn
	Repos  *repo.Set
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc, err := New(c, nil)
	if err != nil {
		log.Fatalf("failed to build service context: %v", err)
	}
	return svc
}

// New wires the service. A nil complete builds an OpenAI-compatible client
// from the LLM section; tests pass their own completion instead.
func New(c config.Config, complete llmpkg.CompletionFunc) (*ServiceContext, error) {
	svc := &ServiceContext{
		Config:      c,
		AgentConfig: c.AgentConfig(),
	}

	if complete == nil {
		switch {
		case c.LLM.Value != nil:
			llmCfg := c.LLM.Value
			client, err := llmpkg.NewClient(llmCfg)
			if err != nil {
				return nil, fmt.Errorf("build llm client: %w", err)
			}
			svc.LLMConfig = llmCfg
			svc.LLMClient = client
			complete = client.CreateChatCompletion
		case c.IsTestEnv():
			logx.Slow("llm section missing in test env, every selection uses the default agent")
			complete = offline
		default:
			return nil, errors.New("svc: llm config is required outside the test env")
		}
	}

	family, err := svc.AgentConfig.Family()
	if err != nil {
		return nil, fmt.Errorf("load prompt family: %w", err)
	}
	svc.PromptFamily = family

	selector, err := agentpkg.NewSelector(complete, family.AutoAgentInstructions(),
		agentpkg.WithConfig(svc.AgentConfig),
		agentpkg.WithUsageCallback(logUsage),
	)
	if err != nil {
		return nil, err
	}
	svc.Selector = selector

	if dir := strings.TrimSpace(svc.AgentConfig.JournalDir); dir != "" {
		w, err := journal.NewWriter(dir, journal.WithFormat(svc.AgentConfig.JournalFormat))
		if err != nil {
			return nil, err
		}
		svc.Journal = w
	}

	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		if raw, err := conn.RawDB(); err == nil {
			raw.SetMaxOpenConns(c.Postgres.MaxOpen)
			raw.SetMaxIdleConns(c.Postgres.MaxIdle)
		}
		repos, err := repo.New(repo.Dependencies{DBConn: conn})
		if err != nil {
			return nil, err
		}
		svc.DBConn = conn
		svc.Repos = repos
	}
	return svc, nil
}

// Record journals and stores sel where configured. Failures are logged only.
func (s *ServiceContext) Record(ctx context.Context, sel agentpkg.Selection) {
	if s.Journal == nil && s.Repos == nil {
		return
	}
	rec := s.selectionRecord(sel)
	if s.Journal != nil {
		if _, err := s.Journal.WriteSelection(rec); err != nil {
			logx.WithContext(ctx).Errorw("journal selection failed", logx.Field("selection_id", sel.ID), logx.Field("error", err.Error()))
		}
	}
	if s.Repos != nil {
		if err := s.Repos.Selections.Save(ctx, rec); err != nil {
			logx.WithContext(ctx).Errorw("store selection failed", logx.Field("selection_id", sel.ID), logx.Field("error", err.Error()))
		}
	}
}

func (s *ServiceContext) selectionRecord(sel agentpkg.Selection) *journal.SelectionRecord {
	rec := &journal.SelectionRecord{
		ID:           sel.ID,
		Timestamp:    sel.Started,
		Query:        sel.Query.Task(),
		ParentQuery:  sel.Query.Parent(),
		TaskText:     sel.Query.String(),
		Model:        s.AgentConfig.SmartLLM,
		PromptFamily: s.PromptFamily.Name(),
		PromptDigest: s.PromptFamily.Digest(),
		AgentName:    sel.Record.Name,
		RolePrompt:   sel.Record.RolePrompt,
		Stage:        sel.Stage,
		Fallback:     sel.Record.IsFallback(),
		RawResponse:  sel.Raw.Text,
		DurationMS:   sel.Duration.Milliseconds(),
	}
	if sel.Raw.Err != nil {
		rec.ErrorMessage = sel.Raw.Err.Error()
	}
	return rec
}

// Close releases the LLM client.
func (s *ServiceContext) Close() error {
	if s.LLMClient == nil {
		return nil
	}
	return s.LLMClient.Close()
}

func offline(context.Context, llmpkg.CompletionRequest) (string, error) {
	return "", ErrOffline
}

func logUsage(u llmpkg.Usage) {
	logx.Debugw("agent selection usage",
		logx.Field("prompt_tokens", u.PromptTokens),
		logx.Field("completion_tokens", u.CompletionTokens),
		logx.Field("total_tokens", u.TotalTokens),
	)
}
