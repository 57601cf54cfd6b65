// Package storage holds the tracker's persisted state on top of a
// key-value port.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
)

// Keys match the browser tracker's localStorage keys.
const (
	KeyChallenges      = "awcChallenges"
	KeyLegend          = "userLegend"
	KeyHandle          = "anilistUsername"
	KeyTitlePreference = "preferredTitle"
	KeyTheme           = "theme"
	KeyGlobalViewMode  = "globalViewMode"
	KeyGlobalFilter    = "globalFilter"
	KeyGlobalSort      = "globalSort"
)

var allKeys = []string{
	KeyChallenges, KeyLegend, KeyHandle, KeyTitlePreference,
	KeyTheme, KeyGlobalViewMode, KeyGlobalFilter, KeyGlobalSort,
}

// KV is a string blob store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// State reads and writes typed values. Corrupt JSON is logged, cleared and
// read as empty.
type State struct {
	kv     KV
	tx     TransactionManager
	logger *slog.Logger
}

func NewState(kv KV, tx TransactionManager, logger *slog.Logger) *State {
	return &State{
		kv:     kv,
		tx:     tx,
		logger: logger.With("component", "state"),
	}
}

func (s *State) Challenges(ctx context.Context) ([]domain.Challenge, error) {
	var out []domain.Challenge
	ok, err := s.readJSON(ctx, KeyChallenges, &out)
	if err != nil || !ok {
		return []domain.Challenge{}, err
	}
	return out, nil
}

func (s *State) SaveChallenges(ctx context.Context, challenges []domain.Challenge) error {
	if challenges == nil {
		challenges = []domain.Challenge{}
	}
	return s.writeJSON(ctx, KeyChallenges, challenges)
}

// Legend returns the saved legend, or the default legend.
func (s *State) Legend(ctx context.Context) (domain.Legend, error) {
	var l domain.Legend
	ok, err := s.readJSON(ctx, KeyLegend, &l)
	if err != nil {
		return domain.Legend{}, err
	}
	if !ok {
		return legend.Default(), nil
	}
	return legend.Normalize(l), nil
}

func (s *State) SaveLegend(ctx context.Context, l domain.Legend) error {
	return s.writeJSON(ctx, KeyLegend, l)
}

func (s *State) Handle(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyHandle, "")
}

// SetHandle stores the AniList username. An empty handle removes it.
func (s *State) SetHandle(ctx context.Context, handle string) error {
	return s.setString(ctx, KeyHandle, handle)
}

func (s *State) TitlePreference(ctx context.Context) (domain.TitlePreference, error) {
	v, err := s.getString(ctx, KeyTitlePreference, string(domain.TitleRomaji))
	return domain.ParseTitlePreference(v), err
}

func (s *State) SetTitlePreference(ctx context.Context, pref domain.TitlePreference) error {
	return s.setString(ctx, KeyTitlePreference, string(pref))
}

// GlobalView returns the saved filter and sort of the global view.
func (s *State) GlobalView(ctx context.Context) (filter, sort string, err error) {
	if filter, err = s.getString(ctx, KeyGlobalFilter, "all"); err != nil {
		return "", "", err
	}
	sort, err = s.getString(ctx, KeyGlobalSort, "title-asc")
	return filter, sort, err
}

func (s *State) SaveGlobalView(ctx context.Context, filter, sort string) error {
	if err := s.setString(ctx, KeyGlobalFilter, filter); err != nil {
		return err
	}
	return s.setString(ctx, KeyGlobalSort, sort)
}

// Snapshot reads the whole state.
func (s *State) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var (
		snap domain.Snapshot
		err  error
	)
	if snap.Handle, err = s.Handle(ctx); err != nil {
		return snap, err
	}
	if snap.Theme, err = s.getString(ctx, KeyTheme, "dark"); err != nil {
		return snap, err
	}
	if snap.TitlePreference, err = s.TitlePreference(ctx); err != nil {
		return snap, err
	}
	if snap.Legend, err = s.Legend(ctx); err != nil {
		return snap, err
	}
	if snap.Challenges, err = s.Challenges(ctx); err != nil {
		return snap, err
	}
	if snap.GlobalViewMode, err = s.getString(ctx, KeyGlobalViewMode, "list"); err != nil {
		return snap, err
	}
	snap.GlobalFilter, snap.GlobalSort, err = s.GlobalView(ctx)
	return snap, err
}

// Restore overwrites the whole state in one transaction.
func (s *State) Restore(ctx context.Context, snap domain.Snapshot) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.SetHandle(ctx, snap.Handle); err != nil {
			return err
		}
		if err := s.setString(ctx, KeyTheme, snap.Theme); err != nil {
			return err
		}
		if err := s.SetTitlePreference(ctx, snap.TitlePreference); err != nil {
			return err
		}
		if err := s.SaveLegend(ctx, snap.Legend); err != nil {
			return err
		}
		if err := s.SaveChallenges(ctx, snap.Challenges); err != nil {
			return err
		}
		if err := s.setString(ctx, KeyGlobalViewMode, snap.GlobalViewMode); err != nil {
			return err
		}
		return s.SaveGlobalView(ctx, snap.GlobalFilter, snap.GlobalSort)
	})
}

// ClearAll removes every key the tracker writes and returns the ones that
// were present. Other keys in the store are left alone.
func (s *State) ClearAll(ctx context.Context) ([]string, error) {
	var removed []string
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		present, err := s.kv.Keys(ctx)
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		for _, key := range allKeys {
			if !slices.Contains(present, key) {
				continue
			}
			if err := s.kv.Remove(ctx, key); err != nil {
				return fmt.Errorf("remove %s: %w", key, err)
			}
			removed = append(removed, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (s *State) readJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("clearing corrupt value", "key", key, "error", err)
		if err := s.kv.Remove(ctx, key); err != nil {
			return false, fmt.Errorf("remove corrupt %s: %w", key, err)
		}
		return false, nil
	}
	return true, nil
}

func (s *State) writeJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *State) getString(ctx context.Context, key, def string) (string, error) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if !ok || v == "" {
		return def, nil
	}
	return v, nil
}

func (s *State) setString(ctx context.Context, key, value string) error {
	if value == "" {
		if err := s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
