//go:build integration

package sqlkv

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/storage"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_kv_store.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := Open(s.ctx, DriverPostgres, connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM kv_store")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestStore_SetUpdatesTimestamp() {
	store := NewStore(s.db)
	older := time.Now().Add(-time.Hour).Truncate(time.Microsecond)
	store.now = func() time.Time { return older }
	s.Require().NoError(store.Set(s.ctx, "theme", "dark"))

	store.now = time.Now
	s.Require().NoError(store.Set(s.ctx, "theme", "light"))

	var row struct {
		Value     string    `db:"value"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	err := s.db.GetContext(s.ctx, &row, "SELECT value, updated_at FROM kv_store WHERE name = $1", "theme")
	s.NoError(err)
	s.Equal("light", row.Value)
	s.True(row.UpdatedAt.After(older))
}

func (s *PostgresIntegrationSuite) TestState_RoundTrip() {
	state := storage.NewState(NewStore(s.db), NewTransactionManager(s.db), slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

	challenges := []domain.Challenge{{
		ID:    1700000000000,
		Title: "Genre Challenge",
		Entries: []domain.Entry{
			{RemoteID: 101, RequirementTitle: "Watch an Action anime", DeclaredStatus: domain.StatusComplete, RemoteStatus: domain.StatusComplete},
		},
	}}
	s.Require().NoError(state.SaveChallenges(s.ctx, challenges))
	s.Require().NoError(state.SetHandle(s.ctx, "Meheu"))

	got, err := state.Challenges(s.ctx)
	s.NoError(err)
	s.Equal(challenges, got)

	handle, err := state.Handle(s.ctx)
	s.NoError(err)
	s.Equal("Meheu", handle)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	store := NewStore(s.db)
	tm := NewTransactionManager(s.db)
	s.Require().NoError(store.Set(s.ctx, "theme", "dark"))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)
		if _, err := exec.ExecContext(ctx, "DELETE FROM kv_store"); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	v, ok, err := store.Get(s.ctx, "theme")
	s.NoError(err)
	s.True(ok)
	s.Equal("dark", v)
}
