package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ AgentSelectionsModel = (*customAgentSelectionsModel)(nil)

const defaultRecentLimit = 50

type (
	// AgentSelectionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customAgentSelectionsModel.
	AgentSelectionsModel interface {
		agentSelectionsModel
		Recent(ctx context.Context, limit int, fallbackOnly bool) ([]AgentSelections, error)
	}

	customAgentSelectionsModel struct {
		*defaultAgentSelectionsModel
	}
)

// NewAgentSelectionsModel returns a model for the database table.
func NewAgentSelectionsModel(conn sqlx.SqlConn) AgentSelectionsModel {
	return &customAgentSelectionsModel{
		defaultAgentSelectionsModel: newAgentSelectionsModel(conn),
	}
}

// Recent returns selections newest first. Limit defaults to 50 when
// non-positive; fallbackOnly keeps rows where the default agent was used.
func (m *customAgentSelectionsModel) Recent(ctx context.Context, limit int, fallbackOnly bool) ([]AgentSelections, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	const baseQuery = `
SELECT %s
FROM %s
%s
ORDER BY selected_at DESC
LIMIT $1`

	var clause string
	if fallbackOnly {
		clause = "WHERE fallback"
	}
	query := fmt.Sprintf(baseQuery, agentSelectionsRows, m.table, clause)

	var rows []AgentSelections
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("agent_selections.Recent query: %w", err)
	}
	return rows, nil
}
