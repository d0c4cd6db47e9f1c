package repo

import (
	"context"
	"errors"
	"fmt"

	"researcher-api/internal/model"
	"researcher-api/pkg/journal"
)

// ErrNotFound is returned when no selection has the requested id.
var ErrNotFound = errors.New("repo: selection not found")

// SelectionsRepo stores agent selections for audit.
type SelectionsRepo interface {
	Save(ctx context.Context, rec *journal.SelectionRecord) error
	Get(ctx context.Context, id string) (*journal.SelectionRecord, error)
	// Recent returns selections newest first.
	Recent(ctx context.Context, limit int, fallbackOnly bool) ([]journal.SelectionRecord, error)
}

type selectionsRepo struct {
	model model.AgentSelectionsModel
}

func newSelectionsRepo(deps Dependencies) SelectionsRepo {
	return &selectionsRepo{model: deps.AgentSelectionsModel}
}

func (r *selectionsRepo) Save(ctx context.Context, rec *journal.SelectionRecord) error {
	if rec == nil {
		return errors.New("repo: nil selection")
	}
	if _, err := r.model.Insert(ctx, toRow(rec)); err != nil {
		return fmt.Errorf("insert selection %s: %w", rec.ID, err)
	}
	return nil
}

func (r *selectionsRepo) Get(ctx context.Context, id string) (*journal.SelectionRecord, error) {
	row, err := r.model.FindOne(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find selection %s: %w", id, err)
	}
	rec := fromRow(row)
	return &rec, nil
}

func (r *selectionsRepo) Recent(ctx context.Context, limit int, fallbackOnly bool) ([]journal.SelectionRecord, error) {
	rows, err := r.model.Recent(ctx, limit, fallbackOnly)
	if err != nil {
		return nil, err
	}
	out := make([]journal.SelectionRecord, 0, len(rows))
	for i := range rows {
		out = append(out, fromRow(&rows[i]))
	}
	return out, nil
}

func toRow(rec *journal.SelectionRecord) *model.AgentSelections {
	return &model.AgentSelections{
		Id:              rec.ID,
		Query:           rec.Query,
		ParentQuery:     rec.ParentQuery,
		TaskText:        rec.TaskText,
		Model:           rec.Model,
		PromptFamily:    rec.PromptFamily,
		PromptDigest:    rec.PromptDigest,
		AgentName:       rec.AgentName,
		AgentRolePrompt: rec.RolePrompt,
		Stage:           rec.Stage,
		Fallback:        rec.Fallback,
		RawResponse:     rec.RawResponse,
		ErrorMessage:    rec.ErrorMessage,
		DurationMs:      rec.DurationMS,
		SelectedAt:      rec.Timestamp.UTC(),
	}
}

func fromRow(row *model.AgentSelections) journal.SelectionRecord {
	return journal.SelectionRecord{
		ID:           row.Id,
		Timestamp:    row.SelectedAt,
		Query:        row.Query,
		ParentQuery:  row.ParentQuery,
		TaskText:     row.TaskText,
		Model:        row.Model,
		PromptFamily: row.PromptFamily,
		PromptDigest: row.PromptDigest,
		AgentName:    row.AgentName,
		RolePrompt:   row.AgentRolePrompt,
		Stage:        row.Stage,
		Fallback:     row.Fallback,
		RawResponse:  row.RawResponse,
		ErrorMessage: row.ErrorMessage,
		DurationMS:   row.DurationMs,
	}
}
