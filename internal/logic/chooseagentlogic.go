// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"strings"

	"researcher-api/internal/svc"
	"researcher-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

var ErrEmptyQuery = errors.New("query is required")

type ChooseAgentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChooseAgentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChooseAgentLogic {
	return &ChooseAgentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChooseAgentLogic) ChooseAgent(req *types.ChooseAgentRequest) (resp *types.ChooseAgentResponse, err error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	sel := l.svcCtx.Selector.Select(l.ctx, query, strings.TrimSpace(req.ParentQuery))
	l.svcCtx.Record(l.ctx, sel)
	l.Infow("agent selected",
		logx.Field("selection_id", sel.ID),
		logx.Field("agent", sel.Record.Name),
		logx.Field("stage", sel.Stage),
	)

	return &types.ChooseAgentResponse{Selection: toAgentSelection(sel)}, nil
}
