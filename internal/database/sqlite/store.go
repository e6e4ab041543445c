package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// Store is the SQLite storage backend. Decimals are stored as TEXT.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a store on a database returned by Open
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

const jackpotColumns = `
	jackpot_id, initial_pool_value, current_pool_value,
	contribution_type, fixed_contribution_percentage,
	variable_contribution_base_percentage, variable_contribution_decay_rate,
	reward_type, fixed_reward_chance,
	variable_reward_base_chance, variable_reward_increment, variable_reward_threshold,
	version, created_at, updated_at`

func scanJackpot(row interface{ Scan(...any) error }) (*domain.Jackpot, error) {
	var j domain.Jackpot
	var rec domain.PolicyRecord
	err := row.Scan(
		&j.ID, &j.InitialPoolValue, &j.CurrentPoolValue,
		&rec.ContributionType, &rec.FixedContributionPercentage,
		&rec.VariableContributionBasePercentage, &rec.VariableContributionDecayRate,
		&rec.RewardType, &rec.FixedRewardChance,
		&rec.VariableRewardBaseChance, &rec.VariableRewardIncrement, &rec.VariableRewardThreshold,
		&j.Version, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Contribution, j.Reward, err = rec.Policies()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodePolicies, j.ID, err)
	}
	return &j, nil
}

func (s *Store) existence(ctx context.Context, query string, arg any) (bool, error) {
	ok, err := exists(ctx, s.db, query, arg)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return ok, nil
}

func (s *Store) ExistsJackpot(ctx context.Context, jackpotID string) (bool, error) {
	return s.existence(ctx, `SELECT EXISTS (SELECT 1 FROM jackpots WHERE jackpot_id = ?)`, jackpotID)
}

func (s *Store) ExistsUser(ctx context.Context, userID int64) (bool, error) {
	return s.existence(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, userID)
}

func (s *Store) ExistsContributionForBet(ctx context.Context, betID string) (bool, error) {
	return s.existence(ctx, `SELECT EXISTS (SELECT 1 FROM contributions WHERE bet_id = ?)`, betID)
}

func (s *Store) ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	j, err := scanJackpot(s.db.QueryRowContext(ctx, `SELECT `+jackpotColumns+` FROM jackpots WHERE jackpot_id = ?`, jackpotID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadJackpot, err)
	}
	return j, nil
}

func (s *Store) WriteJackpotIf(ctx context.Context, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	return s.writeJackpotIf(ctx, s.db, jackpotID, newPool, expectedVersion)
}

func (s *Store) writeJackpotIf(ctx context.Context, q querier, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	res, err := q.ExecContext(ctx, `
		UPDATE jackpots
		SET current_pool_value = ?, version = version + 1, updated_at = ?
		WHERE jackpot_id = ? AND version = ?`,
		newPool.StringFixed(domain.MoneyScale), s.now(), jackpotID, expectedVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToWriteJackpot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToWriteJackpot, err)
	}
	if n == 1 {
		return expectedVersion + 1, nil
	}

	found, err := exists(ctx, q, `SELECT EXISTS (SELECT 1 FROM jackpots WHERE jackpot_id = ?)`, jackpotID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	return 0, domain.ErrConcurrencyConflict
}

func (s *Store) UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error {
	rec := jackpot.Record()
	now := s.now()
	initial := jackpot.InitialPoolValue.StringFixed(domain.MoneyScale)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jackpots (
			jackpot_id, initial_pool_value, current_pool_value,
			contribution_type, fixed_contribution_percentage,
			variable_contribution_base_percentage, variable_contribution_decay_rate,
			reward_type, fixed_reward_chance,
			variable_reward_base_chance, variable_reward_increment, variable_reward_threshold,
			version, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT (jackpot_id) DO UPDATE SET
			contribution_type = excluded.contribution_type,
			fixed_contribution_percentage = excluded.fixed_contribution_percentage,
			variable_contribution_base_percentage = excluded.variable_contribution_base_percentage,
			variable_contribution_decay_rate = excluded.variable_contribution_decay_rate,
			reward_type = excluded.reward_type,
			fixed_reward_chance = excluded.fixed_reward_chance,
			variable_reward_base_chance = excluded.variable_reward_base_chance,
			variable_reward_increment = excluded.variable_reward_increment,
			variable_reward_threshold = excluded.variable_reward_threshold,
			version = jackpots.version + 1,
			updated_at = excluded.updated_at`,
		jackpot.ID, initial, initial,
		rec.ContributionType, rec.FixedContributionPercentage,
		rec.VariableContributionBasePercentage, rec.VariableContributionDecayRate,
		rec.RewardType, rec.FixedRewardChance,
		rec.VariableRewardBaseChance, rec.VariableRewardIncrement, rec.VariableRewardThreshold,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertJackpot, jackpot.ID, err)
	}
	return nil
}

func (s *Store) ListJackpots(ctx context.Context) ([]domain.Jackpot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+jackpotColumns+` FROM jackpots ORDER BY jackpot_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
	}
	defer rows.Close()

	jackpots := []domain.Jackpot{}
	for rows.Next() {
		j, err := scanJackpot(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
		}
		jackpots = append(jackpots, *j)
	}
	return jackpots, rows.Err()
}

func (s *Store) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	version, err := s.writeJackpotIf(ctx, tx, c.JackpotID, c.CurrentJackpotAmount, expectedVersion)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO contributions (`+contributionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.BetID, c.UserID, c.JackpotID,
		c.StakeAmount.StringFixed(domain.MoneyScale),
		c.ContributionAmount.StringFixed(domain.MoneyScale),
		c.CurrentJackpotAmount.StringFixed(domain.MoneyScale),
		c.CreatedAt.UTC(),
	)
	if uniqueViolation(err) == ColumnContributionsBetID {
		return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateBet, c.BetID)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertContribution, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return version, nil
}

const contributionColumns = `bet_id, user_id, jackpot_id, stake_amount, contribution_amount, current_jackpot_amount, created_at`

func scanContribution(row interface{ Scan(...any) error }) (*domain.Contribution, error) {
	var c domain.Contribution
	err := row.Scan(&c.BetID, &c.UserID, &c.JackpotID, &c.StakeAmount, &c.ContributionAmount, &c.CurrentJackpotAmount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) FindContributionForBet(ctx context.Context, betID string) (*domain.Contribution, error) {
	c, err := scanContribution(s.db.QueryRowContext(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE bet_id = ?`, betID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	return c, nil
}

func (s *Store) ListContributionsByJackpot(ctx context.Context, jackpotID string, limit int) ([]domain.Contribution, error) {
	return s.listContributions(ctx, `WHERE jackpot_id = ?`, jackpotID, limit)
}

func (s *Store) ListContributionsByUser(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error) {
	return s.listContributions(ctx, `WHERE user_id = ?`, userID, limit)
}

func (s *Store) listContributions(ctx context.Context, where string, arg any, limit int) ([]domain.Contribution, error) {
	limit = repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+contributionColumns+` FROM contributions `+where+` ORDER BY id DESC LIMIT ?`, arg, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	defer rows.Close()

	out := []domain.Contribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	return s.existence(ctx, `SELECT EXISTS (SELECT 1 FROM rewards WHERE bet_id = ?)`, betID)
}

func (s *Store) ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error) {
	return s.existence(ctx, `SELECT EXISTS (SELECT 1 FROM rewards WHERE jackpot_id = ?)`, jackpotID)
}

const rewardColumns = `bet_id, user_id, jackpot_id, jackpot_reward_amount, created_at`

func scanReward(row interface{ Scan(...any) error }) (*domain.Reward, error) {
	var r domain.Reward
	if err := row.Scan(&r.BetID, &r.UserID, &r.JackpotID, &r.JackpotRewardAmount, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	r, err := scanReward(s.db.QueryRowContext(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE bet_id = ?`, betID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	return r, nil
}

func (s *Store) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	if _, err := s.writeJackpotIf(ctx, tx, r.JackpotID, resetPool, expectedVersion); err != nil {
		return nil, err
	}

	committed := *r
	committed.JackpotRewardAmount = r.JackpotRewardAmount.Round(domain.MoneyScale)
	committed.CreatedAt = r.CreatedAt.UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO rewards (`+rewardColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		committed.BetID, committed.UserID, committed.JackpotID,
		committed.JackpotRewardAmount.StringFixed(domain.MoneyScale), committed.CreatedAt,
	)
	switch uniqueViolation(err) {
	case ColumnRewardsBetID, ColumnRewardsJackpotID:
		return nil, fmt.Errorf("%w: %s", domain.ErrRewardAlreadyClaimed, r.JackpotID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertReward, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return &committed, nil
}

func (s *Store) ListRewardsByUser(ctx context.Context, userID int64, limit int) ([]domain.Reward, error) {
	limit = repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+rewardColumns+` FROM rewards WHERE user_id = ? ORDER BY id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	defer rows.Close()

	out := []domain.Reward{}
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	u := domain.User{Username: username, Enabled: true, CreatedAt: s.now()}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, enabled, created_at) VALUES (?, 1, ?)`, username, u.CreatedAt)
	if uniqueViolation(err) == ColumnUsersUsername {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx, `SELECT id, username, enabled, created_at FROM users WHERE id = ?`, userID).
		Scan(&u.ID, &u.Username, &u.Enabled, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
