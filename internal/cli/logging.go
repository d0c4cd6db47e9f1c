package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"researcher-api/internal/config"
	"researcher-api/pkg/confkit"
)

// ConfigSummaryLines returns human readable lines describing the loaded app config.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	agentCfg := cfg.AgentConfig()
	lines := []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Listen: %s:%d", cfg.Host, cfg.Port),
		sectionLine("LLM config", cfg.LLM),
		sectionLine("Agent config", cfg.Agent),
		fmt.Sprintf("Agent model: %s (temperature %.2f)", agentCfg.SmartLLM, agentCfg.Temperature),
		fmt.Sprintf("Prompt family: %s", promptLine(agentCfg.PromptFamily, agentCfg.PromptTemplate)),
		fmt.Sprintf("Subtopic workers: %d", agentCfg.MaxSubtopics),
		fmt.Sprintf("Journal: %s", presence(strings.TrimSpace(agentCfg.JournalDir) != "", agentCfg.JournalDir)),
	}

	return lines
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}

func presence(ok bool, detail string) string {
	if ok {
		return detail
	}
	return "not configured"
}

func promptLine(family, template string) string {
	if strings.TrimSpace(template) != "" {
		return fmt.Sprintf("%s (template %s)", family, template)
	}
	return family
}

func sectionLine[T any](name string, section confkit.Section[T]) string {
	switch {
	case strings.TrimSpace(section.File) != "":
		return fmt.Sprintf("%s: %s", name, section.File)
	case section.Value != nil:
		return fmt.Sprintf("%s: inline", name)
	default:
		return fmt.Sprintf("%s: not configured", name)
	}
}
