package logic

import (
	"researcher-api/internal/types"
	agentpkg "researcher-api/pkg/agent"
	"researcher-api/pkg/journal"
)

func toAgentSelection(sel agentpkg.Selection) types.AgentSelection {
	return types.AgentSelection{
		ID:         sel.ID,
		Query:      sel.Query.Task(),
		TaskText:   sel.Query.String(),
		Server:     sel.Record.Name,
		RolePrompt: sel.Record.RolePrompt,
		Stage:      sel.Stage,
		Fallback:   sel.Record.IsFallback(),
		DurationMS: sel.Duration.Milliseconds(),
	}
}

func toStoredSelection(rec journal.SelectionRecord) types.StoredSelection {
	return types.StoredSelection{
		AgentSelection: types.AgentSelection{
			ID:         rec.ID,
			Query:      rec.Query,
			TaskText:   rec.TaskText,
			Server:     rec.AgentName,
			RolePrompt: rec.RolePrompt,
			Stage:      rec.Stage,
			Fallback:   rec.Fallback,
			DurationMS: rec.DurationMS,
		},
		ParentQuery:  rec.ParentQuery,
		Model:        rec.Model,
		PromptFamily: rec.PromptFamily,
		PromptDigest: rec.PromptDigest,
		RawResponse:  rec.RawResponse,
		ErrorMessage: rec.ErrorMessage,
		SelectedAt:   rec.Timestamp.UnixMilli(),
	}
}
