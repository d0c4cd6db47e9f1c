package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"researcher-api/internal/config"
	agentpkg "researcher-api/pkg/agent"
	"researcher-api/pkg/confkit"
)

func TestConfigSummaryLines(t *testing.T) {
	require.Equal(t, []string{"Configuration: <nil>"}, ConfigSummaryLines(nil))

	cfg := &config.Config{Env: "dev"}
	cfg.Agent = confkit.Section[agentpkg.Config]{File: "/etc/researcher/agent.yaml", Value: agentpkg.DefaultConfig()}

	lines := ConfigSummaryLines(cfg)
	require.Contains(t, lines, "Environment: dev")
	require.Contains(t, lines, "LLM config: not configured")
	require.Contains(t, lines, "Agent config: /etc/researcher/agent.yaml")
	require.Contains(t, lines, "Agent model: openai:gpt-4.1 (temperature 0.15)")
	require.Contains(t, lines, "Prompt family: default")
	require.Contains(t, lines, "Journal: not configured")
}
