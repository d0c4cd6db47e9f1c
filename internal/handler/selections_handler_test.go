package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"researcher-api/internal/handler"
	"researcher-api/internal/repo"
	"researcher-api/internal/svc"
	"researcher-api/internal/types"
	"researcher-api/pkg/agent"
	"researcher-api/pkg/journal"
)

type stubSelections struct {
	recs []journal.SelectionRecord
}

func (s *stubSelections) Save(_ context.Context, rec *journal.SelectionRecord) error {
	s.recs = append([]journal.SelectionRecord{*rec}, s.recs...)
	return nil
}

func (s *stubSelections) Get(_ context.Context, id string) (*journal.SelectionRecord, error) {
	for i := range s.recs {
		if s.recs[i].ID == id {
			return &s.recs[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *stubSelections) Recent(_ context.Context, limit int, fallbackOnly bool) ([]journal.SelectionRecord, error) {
	var out []journal.SelectionRecord
	for _, rec := range s.recs {
		if fallbackOnly && !rec.Fallback {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func storedServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	svcCtx := newServiceContext(t, personaFor, "")
	store := &stubSelections{}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, rec := range []journal.SelectionRecord{
		{ID: "sel-1", Query: "implants", AgentName: "Oral Surgeon Agent", Stage: agent.StageStrict},
		{ID: "sel-2", Query: "outage", AgentName: agent.DefaultAgentName, Stage: agent.StageFallback, Fallback: true, ErrorMessage: "provider unavailable"},
		{ID: "sel-3", Query: "bone grafts", AgentName: "Periodontist Agent", Stage: agent.StageLenient},
	} {
		rec.Timestamp = at.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(context.Background(), &rec))
	}
	svcCtx.Repos = &repo.Set{Selections: store}
	return svcCtx
}

func get(h http.HandlerFunc, target string, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if vars != nil {
		req = pathvar.WithVars(req, vars)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGetSelectionHandler(t *testing.T) {
	h := handler.GetSelectionHandler(storedServiceContext(t))

	rec := get(h, "/api/agent/selections/sel-2", map[string]string{"id": "sel-2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp types.GetSelectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sel-2", resp.Selection.ID)
	assert.True(t, resp.Selection.Fallback)
	assert.Equal(t, "provider unavailable", resp.Selection.ErrorMessage)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC).UnixMilli(), resp.Selection.SelectedAt)

	rec = get(h, "/api/agent/selections/missing", map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSelectionsHandler(t *testing.T) {
	h := handler.ListSelectionsHandler(storedServiceContext(t))

	rec := get(h, "/api/agent/selections", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp types.ListSelectionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Selections, 3)
	assert.Equal(t, "sel-3", resp.Selections[0].ID)

	rec = get(h, "/api/agent/selections?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Selections, 1)

	rec = get(h, "/api/agent/selections?fallback_only=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Selections, 1)
	assert.Equal(t, "sel-2", resp.Selections[0].ID)

	assert.Equal(t, http.StatusBadRequest, get(h, "/api/agent/selections?limit=0", nil).Code)
}

func TestSelectionsHandlersWithoutStore(t *testing.T) {
	svcCtx := newServiceContext(t, personaFor, "")

	rec := get(handler.GetSelectionHandler(svcCtx), "/api/agent/selections/sel-1", map[string]string{"id": "sel-1"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(handler.ListSelectionsHandler(svcCtx), "/api/agent/selections", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "not configured")
}
