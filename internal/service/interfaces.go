package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"awc_tracker/internal/domain"
)

type ListSource interface {
	GetUserListStatuses(ctx context.Context, handle string) (domain.RemoteStatusSet, error)
	GetPublicProfile(ctx context.Context, handle string) (*domain.Profile, error)
}

type Enricher interface {
	Enrich(ctx context.Context, parsed []domain.ParsedEntry) ([]domain.Entry, []string, error)
}

type StateStore interface {
	Challenges(ctx context.Context) ([]domain.Challenge, error)
	SaveChallenges(ctx context.Context, challenges []domain.Challenge) error
	Legend(ctx context.Context) (domain.Legend, error)
	SaveLegend(ctx context.Context, l domain.Legend) error
	Handle(ctx context.Context) (string, error)
	SetHandle(ctx context.Context, handle string) error
	TitlePreference(ctx context.Context) (domain.TitlePreference, error)
	SetTitlePreference(ctx context.Context, pref domain.TitlePreference) error
	GlobalView(ctx context.Context) (filter, sort string, err error)
	SaveGlobalView(ctx context.Context, filter, sort string) error
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Restore(ctx context.Context, snap domain.Snapshot) error
	ClearAll(ctx context.Context) ([]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event string, challenge domain.Challenge) error
	Close() error
}
