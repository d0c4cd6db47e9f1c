package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	agentpkg "researcher-api/pkg/agent"
)

func TestParseSubtopics(t *testing.T) {
	require.Equal(t, []string{"Implants", "bone grafts"}, parseSubtopics(" Implants ; bone grafts,,implants "))
	require.Empty(t, parseSubtopics(" , ;"))
}

func TestToOutput(t *testing.T) {
	sel := agentpkg.Selection{
		ID:       "sel-1",
		Query:    agentpkg.NewQuery("implants", "oral surgery"),
		Record:   agentpkg.Fallback(),
		Stage:    agentpkg.StageFallback,
		Raw:      agentpkg.RawResponse{Err: errors.New("timeout")},
		Duration: 1500 * time.Millisecond,
	}
	out := toOutput(sel)
	require.Equal(t, "oral surgery - implants", out.TaskText)
	require.True(t, out.Fallback)
	require.Equal(t, "timeout", out.Error)
	require.EqualValues(t, 1500, out.DurationMS)
}
