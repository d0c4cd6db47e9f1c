package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"researcher-api/internal/cli"
	"researcher-api/internal/config"
	"researcher-api/internal/svc"
	agentpkg "researcher-api/pkg/agent"
)

type output struct {
	ID         string `json:"id"`
	TaskText   string `json:"task_text"`
	Server     string `json:"server"`
	RolePrompt string `json:"agent_role_prompt"`
	Stage      string `json:"stage"`
	Fallback   bool   `json:"fallback"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

func toOutput(sel agentpkg.Selection) output {
	out := output{
		ID:         sel.ID,
		TaskText:   sel.Query.String(),
		Server:     sel.Record.Name,
		RolePrompt: sel.Record.RolePrompt,
		Stage:      sel.Stage,
		Fallback:   sel.Record.IsFallback(),
		DurationMS: sel.Duration.Milliseconds(),
	}
	if sel.Raw.Err != nil {
		out.Error = sel.Raw.Err.Error()
	}
	return out
}

// parseSubtopics splits a comma or semicolon separated list, dropping blanks
// and repeats while keeping order.
func parseSubtopics(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key := strings.ToLower(field)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, field)
	}
	return out
}

func fatalf(format string, args ...interface{}) {
	logx.Errorf(format, args...)
	os.Exit(1)
}

func main() {
	var (
		configPath   = flag.String("f", "etc/researcher.yaml", "the config file")
		query        = flag.String("query", "", "task to choose an agent for")
		parent       = flag.String("parent", "", "parent research question, if query is a subtopic")
		subtopicsRaw = flag.String("subtopics", "", "comma-separated subtopics of -parent, chosen in parallel")
		timeout      = flag.Duration("timeout", 2*time.Minute, "overall deadline")
		verbose      = flag.Bool("v", false, "print the configuration summary")
	)
	flag.Parse()
	logx.MustSetup(logx.LogConf{Encoding: "plain"})
	logx.DisableStat()

	subtopics := parseSubtopics(*subtopicsRaw)
	if strings.TrimSpace(*query) == "" && len(subtopics) == 0 {
		fatalf("nothing to do; pass -query or -parent with -subtopics")
	}
	if len(subtopics) > 0 && strings.TrimSpace(*parent) == "" {
		fatalf("-subtopics requires -parent")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	if *verbose {
		cli.LogConfigSummary(cfg)
	}

	svcCtx, err := svc.New(*cfg, nil)
	if err != nil {
		fatalf("build service: %v", err)
	}
	defer func() {
		_ = svcCtx.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logx.Infof("received signal %s, cancelling selection", sig)
		cancel()
	}()

	var sels []agentpkg.Selection
	if len(subtopics) > 0 {
		sels = svcCtx.Selector.ChooseForSubtopics(ctx, strings.TrimSpace(*parent), subtopics)
	}
	if q := strings.TrimSpace(*query); q != "" {
		sels = append(sels, svcCtx.Selector.Select(ctx, q, strings.TrimSpace(*parent)))
	}

	outs := make([]output, 0, len(sels))
	for _, sel := range sels {
		svcCtx.Record(ctx, sel)
		outs = append(outs, toOutput(sel))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(outs) == 1 {
		err = enc.Encode(outs[0])
	} else {
		err = enc.Encode(outs)
	}
	if err != nil {
		fatalf("write output: %v", err)
	}
}
