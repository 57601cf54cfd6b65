package sqlkv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type SQLiteStoreSuite struct {
	suite.Suite
	ctx   context.Context
	db    *sqlx.DB
	store *Store
	tm    *TransactionManager
}

func (s *SQLiteStoreSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := Open(s.ctx, DriverSQLite, filepath.Join(s.T().TempDir(), "data", "awc.db"))
	s.Require().NoError(err)
	s.db = db
	s.store = NewStore(db)
	s.tm = NewTransactionManager(db)
}

func (s *SQLiteStoreSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreSuite))
}

func (s *SQLiteStoreSuite) TestGet_Missing() {
	_, ok, err := s.store.Get(s.ctx, "awcChallenges")
	s.NoError(err)
	s.False(ok)
}

func (s *SQLiteStoreSuite) TestSet_Upserts() {
	s.Require().NoError(s.store.Set(s.ctx, "theme", "dark"))
	s.Require().NoError(s.store.Set(s.ctx, "theme", "light"))

	v, ok, err := s.store.Get(s.ctx, "theme")
	s.NoError(err)
	s.True(ok)
	s.Equal("light", v)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM kv_store"))
	s.Equal(1, count)
}

func (s *SQLiteStoreSuite) TestRemove() {
	s.Require().NoError(s.store.Set(s.ctx, "anilistUsername", "Meheu"))
	s.Require().NoError(s.store.Remove(s.ctx, "anilistUsername"))
	s.Require().NoError(s.store.Remove(s.ctx, "anilistUsername"))

	_, ok, err := s.store.Get(s.ctx, "anilistUsername")
	s.NoError(err)
	s.False(ok)
}

func (s *SQLiteStoreSuite) TestKeys() {
	s.Require().NoError(s.store.Set(s.ctx, "theme", "dark"))
	s.Require().NoError(s.store.Set(s.ctx, "awcChallenges", "[]"))

	keys, err := s.store.Keys(s.ctx)
	s.NoError(err)
	s.Equal([]string{"awcChallenges", "theme"}, keys)
}

func (s *SQLiteStoreSuite) TestTransaction_Commit() {
	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.store.Set(ctx, "theme", "light"); err != nil {
			return err
		}
		v, ok, err := s.store.Get(ctx, "theme")
		s.True(ok)
		s.Equal("light", v)
		return err
	})
	s.NoError(err)

	v, _, err := s.store.Get(s.ctx, "theme")
	s.NoError(err)
	s.Equal("light", v)
}

func (s *SQLiteStoreSuite) TestTransaction_Rollback() {
	s.Require().NoError(s.store.Set(s.ctx, "theme", "dark"))

	boom := errors.New("boom")
	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.store.Set(ctx, "theme", "light"); err != nil {
			return err
		}
		return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
			if err := s.store.Remove(ctx, "theme"); err != nil {
				return err
			}
			return boom
		})
	})
	s.ErrorIs(err, boom)

	v, ok, err := s.store.Get(s.ctx, "theme")
	s.NoError(err)
	s.True(ok)
	s.Equal("dark", v)
}
