package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// Eligibility answers existence questions without loading full records
type Eligibility interface {
	ExistsJackpot(ctx context.Context, jackpotID string) (bool, error)
	ExistsUser(ctx context.Context, userID int64) (bool, error)
	ExistsContributionForBet(ctx context.Context, betID string) (bool, error)
}

// Jackpot is versioned jackpot storage.
// Every committed mutation increments Version; conditional writes fail with
// domain.ErrConcurrencyConflict when the stored version no longer matches.
type Jackpot interface {
	// ReadJackpot returns the jackpot with its current version, or domain.ErrJackpotNotFound
	ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error)

	// WriteJackpotIf sets the pool only if the stored version equals expectedVersion
	WriteJackpotIf(ctx context.Context, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error)

	// UpsertJackpotConfig inserts a new jackpot or updates the policies of an
	// existing one. The pool value of an existing jackpot is untouched and its
	// version is incremented.
	UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error

	ListJackpots(ctx context.Context) ([]domain.Jackpot, error)
}

// Contribution stores contribution facts
type Contribution interface {
	// CommitContribution moves the jackpot pool to c.CurrentJackpotAmount and
	// records c in one atomic step, conditioned on expectedVersion.
	// A bet ID that already has a contribution yields domain.ErrDuplicateBet.
	CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error)

	// FindContributionForBet returns nil, nil when the bet has no contribution
	FindContributionForBet(ctx context.Context, betID string) (*domain.Contribution, error)

	ListContributionsByJackpot(ctx context.Context, jackpotID string, limit int) ([]domain.Contribution, error)
	ListContributionsByUser(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error)
}

// Reward stores reward facts
type Reward interface {
	ExistsRewardForBet(ctx context.Context, betID string) (bool, error)
	ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error)

	// FindRewardForBet returns nil, nil when the bet has no reward
	FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error)

	// CommitReward inserts r and resets the jackpot pool to resetPool in one
	// atomic step, conditioned on expectedVersion. A reward already present for
	// the bet or jackpot yields domain.ErrRewardAlreadyClaimed.
	CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error)

	ListRewardsByUser(ctx context.Context, userID int64, limit int) ([]domain.Reward, error)
}

// User stores bettors
type User interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)

	// GetUser returns domain.ErrUserNotFound when absent
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// Store is a full storage backend
type Store interface {
	Eligibility
	Jackpot
	Contribution
	Reward
	User

	Ping(ctx context.Context) error
	Close() error
}
