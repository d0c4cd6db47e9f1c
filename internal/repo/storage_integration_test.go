//go:build integration
// +build integration

package repo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"researcher-api/internal/model"
	"researcher-api/internal/repo"
	"researcher-api/pkg/journal"
)

func requirePostgres(t *testing.T) sqlx.SqlConn {
	t.Helper()
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}
	return sqlx.NewSqlConn("pgx", dsn)
}

func TestSelectionsRoundTrip(t *testing.T) {
	conn := requirePostgres(t)
	set, err := repo.New(repo.Dependencies{DBConn: conn})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	rec := &journal.SelectionRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
		Query:      "implants",
		TaskText:   "implants",
		AgentName:  "Oral Surgeon Agent",
		RolePrompt: "You are an oral surgeon.",
		Stage:      "strict",
	}
	require.NoError(t, set.Selections.Save(ctx, rec))
	defer model.NewAgentSelectionsModel(conn).Delete(context.Background(), rec.ID)

	got, err := set.Selections.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.AgentName, got.AgentName)
	assert.True(t, rec.Timestamp.Equal(got.Timestamp), "selected_at mismatch")

	recent, err := set.Selections.Recent(ctx, 5, false)
	require.NoError(t, err)
	assert.NotEmpty(t, recent)
}
