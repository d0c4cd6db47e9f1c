package repo

import (
	"errors"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"researcher-api/internal/model"
)

// Dependencies bundles the generated goctl models and shared infrastructure
// required by repository implementations.
type Dependencies struct {
	DBConn               sqlx.SqlConn
	AgentSelectionsModel model.AgentSelectionsModel
}

// Set exposes strongly typed repositories to application logic.
type Set struct {
	Selections SelectionsRepo
}

// New constructs the repository set, validating required dependencies.
func New(deps Dependencies) (*Set, error) {
	if deps.DBConn == nil {
		return nil, errors.New("repo: missing DBConn dependency")
	}
	if deps.AgentSelectionsModel == nil {
		deps.AgentSelectionsModel = model.NewAgentSelectionsModel(deps.DBConn)
	}

	return &Set{
		Selections: newSelectionsRepo(deps),
	}, nil
}
