package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/parser"
	"awc_tracker/internal/publisher"
	"awc_tracker/internal/reconcile"
)

var (
	ErrEmptyPost         = errors.New("post text is empty")
	ErrNoLegend          = errors.New("no legend symbols defined, cannot parse requirements")
	ErrNoRequirements    = errors.New("no requirements found in the post based on the legend")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrEmptyTitle        = errors.New("challenge title is empty")
)

type TrackerService struct {
	lists     ListSource
	enricher  Enricher
	state     StateStore
	txManager TransactionManager
	publisher Publisher
	parser    *parser.Parser
	logger    *slog.Logger
	now       func() time.Time
}

func NewTrackerService(
	lists ListSource,
	enricher Enricher,
	state StateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *TrackerService {
	return &TrackerService{
		lists:     lists,
		enricher:  enricher,
		state:     state,
		txManager: txManager,
		publisher: publisher,
		parser:    parser.New(),
		logger:    logger.With("component", "tracker"),
		now:       time.Now,
	}
}

// AddChallenge parses a post, enriches its entries, applies the user's
// list statuses and stores the result as a new challenge. Nothing is
// stored unless every step up to the save succeeds.
func (s *TrackerService) AddChallenge(ctx context.Context, raw, postURL string) (*domain.AddResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyPost
	}

	handle, err := s.state.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("load handle: %w", err)
	}
	if handle == "" {
		return nil, domain.ErrHandleRequired
	}

	l, err := s.state.Legend(ctx)
	if err != nil {
		return nil, fmt.Errorf("load legend: %w", err)
	}

	parsed := s.parser.Parse(raw, l, s.now())
	for _, w := range parsed.Warnings {
		switch w {
		case parser.WarnNoLegend:
			return nil, ErrNoLegend
		case parser.WarnNoRequirements:
			return nil, ErrNoRequirements
		}
	}

	s.logger.Info("parsed challenge post",
		"title", parsed.Title,
		"entries", len(parsed.Entries),
	)

	entries, entryErrors, err := s.enricher.Enrich(ctx, parsed.Entries)
	if err != nil {
		return nil, fmt.Errorf("enrich entries: %w", err)
	}

	result := &domain.AddResult{
		Warnings: parsed.Warnings,
		Errors:   entryErrors,
	}

	set, err := s.lists.GetUserListStatuses(ctx, handle)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("fetch list statuses failed", "handle", handle, "error", err)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not fetch AniList statuses for %s, statuses stay incomplete: %v", handle, err))
	} else {
		entries = reconcile.Apply(entries, set)
	}

	challenge := domain.Challenge{
		Title:   parsed.Title,
		PostURL: strings.TrimSpace(postURL),
		Entries: entries,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		challenges, err := s.state.Challenges(txCtx)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		challenge.ID = nextID(challenges, s.now().UnixMilli())
		return s.state.SaveChallenges(txCtx, append(challenges, challenge))
	})
	if err != nil {
		return nil, fmt.Errorf("save challenge: %w", err)
	}

	result.Challenge = challenge
	s.publish(ctx, publisher.EventChallengeCreated, challenge)

	s.logger.Info("challenge added",
		"id", challenge.ID,
		"title", challenge.Title,
		"entries", len(challenge.Entries),
		"errors", len(entryErrors),
	)

	return result, nil
}

// RefreshChallenge re-applies the user's list statuses to one challenge.
func (s *TrackerService) RefreshChallenge(ctx context.Context, id int64) (*domain.Challenge, error) {
	set, handle, err := s.fetchStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var refreshed domain.Challenge
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		challenges, err := s.state.Challenges(txCtx)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		i := indexOf(challenges, id)
		if i < 0 {
			return ErrChallengeNotFound
		}
		challenges[i] = reconcile.Challenge(challenges[i], set)
		refreshed = challenges[i]
		return s.state.SaveChallenges(txCtx, challenges)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, publisher.EventChallengeRefreshed, refreshed)

	stats := reconcile.Tally(refreshed)
	s.logger.Info("challenge refreshed",
		"id", id,
		"handle", handle,
		"complete", stats.Complete,
		"ongoing", stats.Ongoing,
		"discrepancies", stats.Discrepancies,
	)

	return &refreshed, nil
}

// RefreshAll fetches the user's list once and re-applies it to every
// stored challenge. A failed fetch leaves stored statuses untouched.
func (s *TrackerService) RefreshAll(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()

	set, handle, err := s.fetchStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var (
		stats     domain.RefreshStats
		refreshed []domain.Challenge
	)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		challenges, err := s.state.Challenges(txCtx)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		refreshed, stats = reconcile.All(challenges, set)
		return s.state.SaveChallenges(txCtx, refreshed)
	})
	if err != nil {
		return nil, fmt.Errorf("save challenges: %w", err)
	}

	for _, c := range refreshed {
		s.publish(ctx, publisher.EventChallengeRefreshed, c)
	}

	stats.Handle = handle
	stats.Duration = time.Since(startTime)

	s.logger.Info("refresh completed",
		"handle", handle,
		"challenges", stats.Challenges,
		"entries", stats.Entries,
		"complete", stats.Complete,
		"ongoing", stats.Ongoing,
		"discrepancies", stats.Discrepancies,
		"duration", stats.Duration,
	)

	return &stats, nil
}

func (s *TrackerService) Rename(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		challenges, err := s.state.Challenges(txCtx)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		i := indexOf(challenges, id)
		if i < 0 {
			return ErrChallengeNotFound
		}
		challenges[i].Title = title
		return s.state.SaveChallenges(txCtx, challenges)
	})
}

func (s *TrackerService) Delete(ctx context.Context, id int64) error {
	var deleted domain.Challenge
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		challenges, err := s.state.Challenges(txCtx)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}
		i := indexOf(challenges, id)
		if i < 0 {
			return ErrChallengeNotFound
		}
		deleted = challenges[i]
		return s.state.SaveChallenges(txCtx, append(challenges[:i], challenges[i+1:]...))
	})
	if err != nil {
		return err
	}

	s.publish(ctx, publisher.EventChallengeDeleted, deleted)
	return nil
}

func (s *TrackerService) fetchStatuses(ctx context.Context) (domain.RemoteStatusSet, string, error) {
	handle, err := s.state.Handle(ctx)
	if err != nil {
		return domain.RemoteStatusSet{}, "", fmt.Errorf("load handle: %w", err)
	}
	if handle == "" {
		return domain.RemoteStatusSet{}, "", domain.ErrHandleRequired
	}

	set, err := s.lists.GetUserListStatuses(ctx, handle)
	if err != nil {
		return domain.RemoteStatusSet{}, "", fmt.Errorf("fetch list statuses for %s: %w", handle, err)
	}
	return set, handle, nil
}

func (s *TrackerService) publish(ctx context.Context, event string, c domain.Challenge) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event, c); err != nil {
		s.logger.Warn("publish failed", "event", event, "id", c.ID, "error", err)
	}
}

func indexOf(challenges []domain.Challenge, id int64) int {
	for i, c := range challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns candidate, bumped past any id already in use.
func nextID(challenges []domain.Challenge, candidate int64) int64 {
	for indexOf(challenges, candidate) >= 0 {
		candidate++
	}
	return candidate
}
