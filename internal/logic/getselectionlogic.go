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

// ErrStoreDisabled is returned by read endpoints when Postgres is not configured.
var ErrStoreDisabled = errors.New("selection store is not configured")

type GetSelectionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetSelectionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetSelectionLogic {
	return &GetSelectionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetSelectionLogic) GetSelection(req *types.GetSelectionRequest) (resp *types.GetSelectionResponse, err error) {
	if l.svcCtx.Repos == nil {
		return nil, ErrStoreDisabled
	}
	rec, err := l.svcCtx.Repos.Selections.Get(l.ctx, strings.TrimSpace(req.ID))
	if err != nil {
		return nil, err
	}
	return &types.GetSelectionResponse{Selection: toStoredSelection(*rec)}, nil
}
