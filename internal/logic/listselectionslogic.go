// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"researcher-api/internal/svc"
	"researcher-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListSelectionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListSelectionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListSelectionsLogic {
	return &ListSelectionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListSelectionsLogic) ListSelections(req *types.ListSelectionsRequest) (resp *types.ListSelectionsResponse, err error) {
	if l.svcCtx.Repos == nil {
		return nil, ErrStoreDisabled
	}
	recs, err := l.svcCtx.Repos.Selections.Recent(l.ctx, req.Limit, req.FallbackOnly)
	if err != nil {
		return nil, err
	}
	resp = &types.ListSelectionsResponse{Selections: make([]types.StoredSelection, 0, len(recs))}
	for _, rec := range recs {
		resp.Selections = append(resp.Selections, toStoredSelection(rec))
	}
	return resp, nil
}
