package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"awc_tracker/internal/aggregate"
	"awc_tracker/internal/backup"
	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
	"awc_tracker/internal/postgen"
)

func (s *TrackerService) Challenge(ctx context.Context, id int64) (*domain.Challenge, error) {
	challenges, err := s.state.Challenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	i := indexOf(challenges, id)
	if i < 0 {
		return nil, ErrChallengeNotFound
	}
	return &challenges[i], nil
}

// Challenges lists stored challenges filtered and sorted for the sidebar.
func (s *TrackerService) Challenges(ctx context.Context, f aggregate.ChallengeFilter, order aggregate.ChallengeSort) ([]domain.Challenge, error) {
	challenges, err := s.state.Challenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	out := aggregate.FilterChallenges(challenges, f)
	aggregate.SortChallenges(out, order)
	return out, nil
}

// GlobalView aggregates every challenge by anime. Empty filter and sort
// fall back to the saved view settings; the used settings are saved back.
func (s *TrackerService) GlobalView(ctx context.Context, q aggregate.Query) ([]domain.GlobalRecord, error) {
	savedFilter, savedSort, err := s.state.GlobalView(ctx)
	if err != nil {
		return nil, fmt.Errorf("load view settings: %w", err)
	}
	if q.Filter == "" {
		if q.Filter, err = aggregate.ParseFilter(savedFilter); err != nil {
			q.Filter = aggregate.FilterAll
		}
	}
	if q.Sort == "" {
		if q.Sort, err = aggregate.ParseSort(savedSort); err != nil {
			q.Sort = aggregate.SortTitleAsc
		}
	}
	if q.Preference == "" {
		if q.Preference, err = s.state.TitlePreference(ctx); err != nil {
			return nil, fmt.Errorf("load title preference: %w", err)
		}
	}

	challenges, err := s.state.Challenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}

	if err := s.state.SaveGlobalView(ctx, string(q.Filter), string(q.Sort)); err != nil {
		return nil, fmt.Errorf("save view settings: %w", err)
	}
	return aggregate.View(challenges, q), nil
}

// GenerateCode renders a challenge back into forum-post form.
func (s *TrackerService) GenerateCode(ctx context.Context, id int64) (string, error) {
	c, err := s.Challenge(ctx, id)
	if err != nil {
		return "", err
	}
	l, err := s.state.Legend(ctx)
	if err != nil {
		return "", fmt.Errorf("load legend: %w", err)
	}
	return postgen.Generate(*c, l), nil
}

func (s *TrackerService) Legend(ctx context.Context) (domain.Legend, error) {
	return s.state.Legend(ctx)
}

// SaveLegend validates and stores a legend. Duplicate symbols leave the
// stored legend unchanged. An empty legend stores the default one and
// still returns legend.ErrEmptyLegend.
func (s *TrackerService) SaveLegend(ctx context.Context, candidate domain.Legend) (domain.Legend, error) {
	cleaned, err := legend.ValidateForSave(candidate)
	switch {
	case errors.Is(err, legend.ErrEmptyLegend):
		def := legend.Default()
		if saveErr := s.state.SaveLegend(ctx, def); saveErr != nil {
			return domain.Legend{}, fmt.Errorf("save default legend: %w", saveErr)
		}
		s.logger.Warn("empty legend replaced by default")
		return def, err
	case err != nil:
		return domain.Legend{}, err
	}

	if err := s.state.SaveLegend(ctx, cleaned); err != nil {
		return domain.Legend{}, fmt.Errorf("save legend: %w", err)
	}
	return cleaned, nil
}

func (s *TrackerService) Handle(ctx context.Context) (string, error) {
	return s.state.Handle(ctx)
}

// SetHandle stores the AniList username and refreshes every challenge
// against the new user's list. The handle is kept even if the refresh
// fails. With no challenges stored nothing is fetched.
func (s *TrackerService) SetHandle(ctx context.Context, handle string) (*domain.RefreshStats, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, domain.ErrHandleRequired
	}
	if err := s.state.SetHandle(ctx, handle); err != nil {
		return nil, fmt.Errorf("save handle: %w", err)
	}

	challenges, err := s.state.Challenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	if len(challenges) == 0 {
		return &domain.RefreshStats{Handle: handle}, nil
	}
	return s.RefreshAll(ctx)
}

func (s *TrackerService) ClearHandle(ctx context.Context) error {
	return s.state.SetHandle(ctx, "")
}

func (s *TrackerService) Profile(ctx context.Context) (*domain.Profile, error) {
	handle, err := s.state.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("load handle: %w", err)
	}
	if handle == "" {
		return nil, domain.ErrHandleRequired
	}
	return s.lists.GetPublicProfile(ctx, handle)
}

func (s *TrackerService) SetTitlePreference(ctx context.Context, pref domain.TitlePreference) error {
	return s.state.SetTitlePreference(ctx, pref)
}

func (s *TrackerService) TitlePreference(ctx context.Context) (domain.TitlePreference, error) {
	return s.state.TitlePreference(ctx)
}

// Export writes the whole state as a backup document.
func (s *TrackerService) Export(ctx context.Context, w io.Writer, version string) error {
	snap, err := s.state.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot state: %w", err)
	}
	return backup.Encode(w, snap, version)
}

// Import validates a backup document and replaces the whole state with
// it. An invalid document changes nothing. When the document carries a
// handle and challenges they are refreshed; a failed refresh is only a
// warning.
func (s *TrackerService) Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error) {
	snap, err := backup.Decode(r)
	if err != nil {
		return nil, err
	}
	if err := s.state.Restore(ctx, snap); err != nil {
		return nil, fmt.Errorf("restore state: %w", err)
	}
	s.logger.Info("state imported", "challenges", len(snap.Challenges), "handle", snap.Handle)

	result := &domain.ImportResult{Snapshot: snap}
	if snap.Handle == "" || len(snap.Challenges) == 0 {
		return result, nil
	}

	stats, err := s.RefreshAll(ctx)
	if err != nil {
		s.logger.Warn("refresh after import failed", "handle", snap.Handle, "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not refresh AniList statuses: %v", err))
		return result, nil
	}
	result.Refreshed = stats
	return result, nil
}

// ClearAll removes every stored value and returns the keys it removed.
func (s *TrackerService) ClearAll(ctx context.Context) ([]string, error) {
	return s.state.ClearAll(ctx)
}
