// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"researcher-api/internal/svc"
	"researcher-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const maxBatchSubtopics = 32

var (
	ErrEmptyParent    = errors.New("parent_query is required")
	ErrEmptySubtopics = errors.New("subtopics must not be empty")
)

type ChooseSubtopicAgentsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChooseSubtopicAgentsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChooseSubtopicAgentsLogic {
	return &ChooseSubtopicAgentsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChooseSubtopicAgentsLogic) ChooseSubtopicAgents(req *types.ChooseSubtopicAgentsRequest) (resp *types.ChooseSubtopicAgentsResponse, err error) {
	parent := strings.TrimSpace(req.ParentQuery)
	if parent == "" {
		return nil, ErrEmptyParent
	}
	if len(req.Subtopics) == 0 {
		return nil, ErrEmptySubtopics
	}
	if len(req.Subtopics) > maxBatchSubtopics {
		return nil, fmt.Errorf("at most %d subtopics per request, got %d", maxBatchSubtopics, len(req.Subtopics))
	}
	subtopics := make([]string, len(req.Subtopics))
	for i, s := range req.Subtopics {
		subtopics[i] = strings.TrimSpace(s)
		if subtopics[i] == "" {
			return nil, fmt.Errorf("subtopics[%d] is empty", i)
		}
	}

	sels := l.svcCtx.Selector.ChooseForSubtopics(l.ctx, parent, subtopics)
	resp = &types.ChooseSubtopicAgentsResponse{Selections: make([]types.AgentSelection, 0, len(sels))}
	fallbacks := 0
	for _, sel := range sels {
		l.svcCtx.Record(l.ctx, sel)
		if sel.Record.IsFallback() {
			fallbacks++
		}
		resp.Selections = append(resp.Selections, toAgentSelection(sel))
	}
	l.Infow("subtopic agents selected",
		logx.Field("parent_query", parent),
		logx.Field("count", len(sels)),
		logx.Field("fallbacks", fallbacks),
	)
	return resp, nil
}
