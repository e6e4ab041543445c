package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/database/generated"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// Store is the PostgreSQL storage backend.
// Conditional writes use UPDATE ... WHERE version = $n; compound commits run in one transaction.
type Store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a store on an open pool. Migrations must already be applied.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
		q:  generated.New(db),
	}
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func toDomainJackpot(row generated.Jackpot) (*domain.Jackpot, error) {
	rec := domain.PolicyRecord{
		ContributionType:                   domain.PolicyType(row.ContributionType),
		FixedContributionPercentage:        row.FixedContributionPercentage,
		VariableContributionBasePercentage: row.VariableContributionBasePercentage,
		VariableContributionDecayRate:      row.VariableContributionDecayRate,
		RewardType:                         domain.PolicyType(row.RewardType),
		FixedRewardChance:                  row.FixedRewardChance,
		VariableRewardBaseChance:           row.VariableRewardBaseChance,
		VariableRewardIncrement:            row.VariableRewardIncrement,
		VariableRewardThreshold:            row.VariableRewardThreshold,
	}
	contribution, reward, err := rec.Policies()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodePolicies, row.JackpotID, err)
	}
	return &domain.Jackpot{
		ID:               row.JackpotID,
		InitialPoolValue: row.InitialPoolValue,
		CurrentPoolValue: row.CurrentPoolValue,
		Contribution:     contribution,
		Reward:           reward,
		Version:          row.Version,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}, nil
}

func toDomainContribution(row generated.Contribution) domain.Contribution {
	return domain.Contribution{
		BetID:                row.BetID,
		UserID:               row.UserID,
		JackpotID:            row.JackpotID,
		StakeAmount:          row.StakeAmount,
		ContributionAmount:   row.ContributionAmount,
		CurrentJackpotAmount: row.CurrentJackpotAmount,
		CreatedAt:            row.CreatedAt.Time,
	}
}

func toDomainReward(row generated.Reward) domain.Reward {
	return domain.Reward{
		BetID:               row.BetID,
		UserID:              row.UserID,
		JackpotID:           row.JackpotID,
		JackpotRewardAmount: row.JackpotRewardAmount,
		CreatedAt:           row.CreatedAt.Time,
	}
}

func toDomainUser(row generated.User) *domain.User {
	return &domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Enabled:   row.Enabled,
		CreatedAt: row.CreatedAt.Time,
	}
}

func upsertParams(jackpot *domain.Jackpot) generated.UpsertJackpotConfigParams {
	rec := jackpot.Record()
	return generated.UpsertJackpotConfigParams{
		JackpotID:                          jackpot.ID,
		InitialPoolValue:                   jackpot.InitialPoolValue,
		ContributionType:                   string(rec.ContributionType),
		FixedContributionPercentage:        rec.FixedContributionPercentage,
		VariableContributionBasePercentage: rec.VariableContributionBasePercentage,
		VariableContributionDecayRate:      rec.VariableContributionDecayRate,
		RewardType:                         string(rec.RewardType),
		FixedRewardChance:                  rec.FixedRewardChance,
		VariableRewardBaseChance:           rec.VariableRewardBaseChance,
		VariableRewardIncrement:            rec.VariableRewardIncrement,
		VariableRewardThreshold:            rec.VariableRewardThreshold,
	}
}

// listLimit normalizes a caller limit into the int32 sqlc binds for LIMIT
func listLimit(limit int) int32 {
	return int32(repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)) //nolint:gosec // capped at MaxListLimit
}

func (s *Store) ExistsJackpot(ctx context.Context, jackpotID string) (bool, error) {
	ok, err := s.q.JackpotExists(ctx, jackpotID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) ExistsUser(ctx context.Context, userID int64) (bool, error) {
	ok, err := s.q.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) ExistsContributionForBet(ctx context.Context, betID string) (bool, error) {
	ok, err := s.q.ContributionExistsForBet(ctx, betID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	row, err := s.q.GetJackpot(ctx, jackpotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadJackpot, err)
	}
	return toDomainJackpot(row)
}

func (s *Store) WriteJackpotIf(ctx context.Context, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	return writeJackpotIf(ctx, s.q, jackpotID, newPool, expectedVersion)
}

// writeJackpotIf is the version CAS; no matching row means a stale version or an unknown jackpot
func writeJackpotIf(ctx context.Context, q *generated.Queries, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	version, err := q.UpdateJackpotPoolIfVersion(ctx, generated.UpdateJackpotPoolIfVersionParams{
		JackpotID:        jackpotID,
		CurrentPoolValue: newPool,
		Version:          expectedVersion,
	})
	if err == nil {
		return version, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToWriteJackpot, err)
	}

	found, err := q.JackpotExists(ctx, jackpotID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	return 0, domain.ErrConcurrencyConflict
}

// UpsertJackpotConfig inserts a new jackpot or replaces an existing one's policies.
// Updating an existing jackpot bumps its version, so an evaluation read under the old policy loses its CAS.
func (s *Store) UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error {
	if err := s.q.UpsertJackpotConfig(ctx, upsertParams(jackpot)); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertJackpot, jackpot.ID, err)
	}
	return nil
}

func (s *Store) ListJackpots(ctx context.Context) ([]domain.Jackpot, error) {
	rows, err := s.q.ListJackpots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
	}

	jackpots := make([]domain.Jackpot, 0, len(rows))
	for _, row := range rows {
		j, err := toDomainJackpot(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
		}
		jackpots = append(jackpots, *j)
	}
	return jackpots, nil
}

func (s *Store) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	q := s.q.WithTx(tx)
	version, err := writeJackpotIf(ctx, q, c.JackpotID, c.CurrentJackpotAmount, expectedVersion)
	if err != nil {
		return 0, err
	}

	err = q.InsertContribution(ctx, generated.InsertContributionParams{
		BetID:                c.BetID,
		UserID:               c.UserID,
		JackpotID:            c.JackpotID,
		StakeAmount:          c.StakeAmount,
		ContributionAmount:   c.ContributionAmount,
		CurrentJackpotAmount: c.CurrentJackpotAmount,
		CreatedAt:            timestamptz(c.CreatedAt),
	})
	if uniqueViolation(err) == ConstraintContributionsBetID {
		return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateBet, c.BetID)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertContribution, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return version, nil
}

func (s *Store) FindContributionForBet(ctx context.Context, betID string) (*domain.Contribution, error) {
	row, err := s.q.GetContributionByBet(ctx, betID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	c := toDomainContribution(row)
	return &c, nil
}

func (s *Store) ListContributionsByJackpot(ctx context.Context, jackpotID string, limit int) ([]domain.Contribution, error) {
	rows, err := s.q.ListContributionsByJackpot(ctx, generated.ListContributionsByJackpotParams{
		JackpotID: jackpotID,
		Limit:     listLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	return lo.Map(rows, func(row generated.Contribution, _ int) domain.Contribution {
		return toDomainContribution(row)
	}), nil
}

func (s *Store) ListContributionsByUser(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error) {
	rows, err := s.q.ListContributionsByUser(ctx, generated.ListContributionsByUserParams{
		UserID: userID,
		Limit:  listLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	return lo.Map(rows, func(row generated.Contribution, _ int) domain.Contribution {
		return toDomainContribution(row)
	}), nil
}

func (s *Store) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	ok, err := s.q.RewardExistsForBet(ctx, betID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error) {
	ok, err := s.q.RewardExistsForJackpot(ctx, jackpotID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	row, err := s.q.GetRewardByBet(ctx, betID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	r := toDomainReward(row)
	return &r, nil
}

func (s *Store) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	q := s.q.WithTx(tx)
	if _, err := writeJackpotIf(ctx, q, r.JackpotID, resetPool, expectedVersion); err != nil {
		return nil, err
	}

	row, err := q.InsertReward(ctx, generated.InsertRewardParams{
		BetID:               r.BetID,
		UserID:              r.UserID,
		JackpotID:           r.JackpotID,
		JackpotRewardAmount: r.JackpotRewardAmount,
		CreatedAt:           timestamptz(r.CreatedAt),
	})
	switch uniqueViolation(err) {
	case ConstraintRewardsBetID, ConstraintRewardsJackpotID:
		return nil, fmt.Errorf("%w: %s", domain.ErrRewardAlreadyClaimed, r.JackpotID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertReward, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	committed := toDomainReward(row)
	return &committed, nil
}

func (s *Store) ListRewardsByUser(ctx context.Context, userID int64, limit int) ([]domain.Reward, error) {
	rows, err := s.q.ListRewardsByUser(ctx, generated.ListRewardsByUserParams{
		UserID: userID,
		Limit:  listLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	return lo.Map(rows, func(row generated.Reward, _ int) domain.Reward {
		return toDomainReward(row)
	}), nil
}

func (s *Store) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	row, err := s.q.CreateUser(ctx, username)
	if uniqueViolation(err) == ConstraintUsersUsername {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return toDomainUser(row), nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	row, err := s.q.GetUser(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return toDomainUser(row), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() error {
	s.db.Close()
	return nil
}
