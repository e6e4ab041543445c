// Package redis is the Redis storage backend. Jackpots are hashes carrying a version
// field; every compound commit is a WATCH/MULTI/EXEC transaction over the touched keys.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// Store is the Redis storage backend
type Store struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a store whose keys all start with prefix
func NewStore(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) key(format string, args ...any) string {
	return s.prefix + fmt.Sprintf(format, args...)
}

// jackpotFields is the full stored hash of a jackpot
func (s *Store) jackpotFields(j *domain.Jackpot, policy []byte) map[string]any {
	return map[string]any{
		fieldInitial:   j.InitialPoolValue.StringFixed(domain.MoneyScale),
		fieldCurrent:   j.CurrentPoolValue.StringFixed(domain.MoneyScale),
		fieldPolicy:    string(policy),
		fieldVersion:   j.Version,
		fieldCreatedAt: j.CreatedAt.Format(time.RFC3339Nano),
		fieldUpdatedAt: j.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func decodeJackpot(id string, h map[string]string) (*domain.Jackpot, error) {
	j := &domain.Jackpot{ID: id}
	var err error
	if j.InitialPoolValue, err = decimal.NewFromString(h[fieldInitial]); err != nil {
		return nil, err
	}
	if j.CurrentPoolValue, err = decimal.NewFromString(h[fieldCurrent]); err != nil {
		return nil, err
	}
	if j.Version, err = strconv.ParseInt(h[fieldVersion], 10, 64); err != nil {
		return nil, err
	}
	if j.CreatedAt, err = time.Parse(time.RFC3339Nano, h[fieldCreatedAt]); err != nil {
		return nil, err
	}
	if j.UpdatedAt, err = time.Parse(time.RFC3339Nano, h[fieldUpdatedAt]); err != nil {
		return nil, err
	}

	var rec domain.PolicyRecord
	if err := json.Unmarshal([]byte(h[fieldPolicy]), &rec); err != nil {
		return nil, err
	}
	if j.Contribution, j.Reward, err = rec.Policies(); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Store) exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedExistenceCheck, err)
	}
	return n > 0, nil
}

func (s *Store) ExistsJackpot(ctx context.Context, jackpotID string) (bool, error) {
	return s.exists(ctx, s.key(keyJackpot, jackpotID))
}

func (s *Store) ExistsUser(ctx context.Context, userID int64) (bool, error) {
	return s.exists(ctx, s.key(keyUser, userID))
}

func (s *Store) ExistsContributionForBet(ctx context.Context, betID string) (bool, error) {
	return s.exists(ctx, s.key(keyContribution, betID))
}

func (s *Store) ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	return s.readJackpot(ctx, s.client, jackpotID)
}

func (s *Store) readJackpot(ctx context.Context, c redis.Cmdable, jackpotID string) (*domain.Jackpot, error) {
	h, err := c.HGetAll(ctx, s.key(keyJackpot, jackpotID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadJackpot, err)
	}
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	j, err := decodeJackpot(jackpotID, h)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodeJackpot, jackpotID, err)
	}
	return j, nil
}

// checkVersion reads the watched version and fails unless it equals expected
func (s *Store) checkVersion(ctx context.Context, tx *redis.Tx, jackpotID string, expected int64) error {
	version, err := tx.HGet(ctx, s.key(keyJackpot, jackpotID), fieldVersion).Int64()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReadJackpot, err)
	}
	if version != expected {
		return domain.ErrConcurrencyConflict
	}
	return nil
}

// casFields are the jackpot fields set by a successful conditional write
func (s *Store) casFields(newPool decimal.Decimal, expectedVersion int64) map[string]any {
	return map[string]any{
		fieldCurrent:   newPool.StringFixed(domain.MoneyScale),
		fieldVersion:   expectedVersion + 1,
		fieldUpdatedAt: s.now().Format(time.RFC3339Nano),
	}
}

// watch runs fn under WATCH; a key touched by another client maps to a conflict
func (s *Store) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	err := s.client.Watch(ctx, fn, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrConcurrencyConflict
	}
	return err
}

func (s *Store) WriteJackpotIf(ctx context.Context, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	jackpotKey := s.key(keyJackpot, jackpotID)
	err := s.watch(ctx, func(tx *redis.Tx) error {
		if err := s.checkVersion(ctx, tx, jackpotID, expectedVersion); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, jackpotKey, s.casFields(newPool, expectedVersion))
			return nil
		})
		return err
	}, jackpotKey)
	if err != nil {
		return 0, wrapUnlessDomain(ErrMsgFailedToWriteJackpot, err)
	}
	return expectedVersion + 1, nil
}

func (s *Store) UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error {
	jackpotKey := s.key(keyJackpot, jackpot.ID)
	policy, err := json.Marshal(jackpot.Record())
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertJackpot, jackpot.ID, err)
	}

	err = s.watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, jackpotKey).Result()
		if err != nil {
			return err
		}
		now := s.now()
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if n > 0 {
				pipe.HSet(ctx, jackpotKey, fieldPolicy, string(policy), fieldUpdatedAt, now.Format(time.RFC3339Nano))
				pipe.HIncrBy(ctx, jackpotKey, fieldVersion, 1)
				return nil
			}
			fresh := *jackpot
			fresh.CurrentPoolValue = jackpot.InitialPoolValue
			fresh.Version = 0
			fresh.CreatedAt, fresh.UpdatedAt = now, now
			pipe.HSet(ctx, jackpotKey, s.jackpotFields(&fresh, policy))
			pipe.SAdd(ctx, s.key(keyJackpotIndex), jackpot.ID)
			return nil
		})
		return err
	}, jackpotKey)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertJackpot, jackpot.ID, err)
	}
	return nil
}

func (s *Store) ListJackpots(ctx context.Context) ([]domain.Jackpot, error) {
	ids, err := s.client.SMembers(ctx, s.key(keyJackpotIndex)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
	}
	sort.Strings(ids)

	jackpots := make([]domain.Jackpot, 0, len(ids))
	for _, id := range ids {
		j, err := s.ReadJackpot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListJackpots, err)
		}
		jackpots = append(jackpots, *j)
	}
	return jackpots, nil
}

func (s *Store) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	jackpotKey := s.key(keyJackpot, c.JackpotID)
	contributionKey := s.key(keyContribution, c.BetID)

	stored := c.Rounded()
	data, err := json.Marshal(stored)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitContribution, err)
	}

	err = s.watch(ctx, func(tx *redis.Tx) error {
		dup, err := tx.Exists(ctx, contributionKey).Result()
		if err != nil {
			return err
		}
		if dup > 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateBet, c.BetID)
		}
		if err := s.checkVersion(ctx, tx, c.JackpotID, expectedVersion); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, jackpotKey, s.casFields(stored.CurrentJackpotAmount, expectedVersion))
			pipe.Set(ctx, contributionKey, data, 0)
			pipe.LPush(ctx, s.key(keyJackpotContribution, c.JackpotID), c.BetID)
			pipe.LPush(ctx, s.key(keyUserContribution, c.UserID), c.BetID)
			return nil
		})
		return err
	}, jackpotKey, contributionKey)
	if err != nil {
		return 0, wrapUnlessDomain(ErrMsgFailedToCommitContribution, err)
	}
	return expectedVersion + 1, nil
}

func (s *Store) FindContributionForBet(ctx context.Context, betID string) (*domain.Contribution, error) {
	data, err := s.client.Get(ctx, s.key(keyContribution, betID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	var c domain.Contribution
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryContributions, err)
	}
	return &c, nil
}

func (s *Store) ListContributionsByJackpot(ctx context.Context, jackpotID string, limit int) ([]domain.Contribution, error) {
	return listIndexed[domain.Contribution](ctx, s, s.key(keyJackpotContribution, jackpotID), keyContribution, limit, ErrMsgFailedToQueryContributions)
}

func (s *Store) ListContributionsByUser(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error) {
	return listIndexed[domain.Contribution](ctx, s, s.key(keyUserContribution, userID), keyContribution, limit, ErrMsgFailedToQueryContributions)
}

// listIndexed resolves the newest limit bet IDs of an index list to their JSON records.
// Failures are wrapped with errMsg.
func listIndexed[T any](ctx context.Context, s *Store, indexKey, recordFormat string, limit int, errMsg string) ([]T, error) {
	limit = repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)
	betIDs, err := s.client.LRange(ctx, indexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	out := make([]T, 0, len(betIDs))
	if len(betIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(betIDs))
	for i, id := range betIDs {
		keys[i] = s.key(recordFormat, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", errMsg, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	return s.exists(ctx, s.key(keyRewardByBet, betID))
}

func (s *Store) ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error) {
	return s.exists(ctx, s.key(keyRewardByJackpot, jackpotID))
}

func (s *Store) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	data, err := s.client.Get(ctx, s.key(keyRewardByBet, betID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	var r domain.Reward
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRewards, err)
	}
	return &r, nil
}

func (s *Store) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	jackpotKey := s.key(keyJackpot, r.JackpotID)
	byBetKey := s.key(keyRewardByBet, r.BetID)
	byJackpotKey := s.key(keyRewardByJackpot, r.JackpotID)

	committed := *r
	committed.JackpotRewardAmount = r.JackpotRewardAmount.Round(domain.MoneyScale)
	committed.CreatedAt = r.CreatedAt.UTC()
	data, err := json.Marshal(committed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitReward, err)
	}

	err = s.watch(ctx, func(tx *redis.Tx) error {
		if err := s.checkVersion(ctx, tx, r.JackpotID, expectedVersion); err != nil {
			return err
		}
		claimed, err := tx.Exists(ctx, byBetKey, byJackpotKey).Result()
		if err != nil {
			return err
		}
		if claimed > 0 {
			return fmt.Errorf("%w: %s", domain.ErrRewardAlreadyClaimed, r.JackpotID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, jackpotKey, s.casFields(resetPool, expectedVersion))
			pipe.Set(ctx, byBetKey, data, 0)
			pipe.Set(ctx, byJackpotKey, r.BetID, 0)
			pipe.LPush(ctx, s.key(keyUserReward, r.UserID), r.BetID)
			return nil
		})
		return err
	}, jackpotKey, byBetKey, byJackpotKey)
	if err != nil {
		return nil, wrapUnlessDomain(ErrMsgFailedToCommitReward, err)
	}
	return &committed, nil
}

func (s *Store) ListRewardsByUser(ctx context.Context, userID int64, limit int) ([]domain.Reward, error) {
	return listIndexed[domain.Reward](ctx, s, s.key(keyUserReward, userID), keyRewardByBet, limit, ErrMsgFailedToQueryRewards)
}

func (s *Store) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	usernameKey := s.key(keyUsername, username)
	var user *domain.User

	err := s.watch(ctx, func(tx *redis.Tx) error {
		taken, err := tx.Exists(ctx, usernameKey).Result()
		if err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
		}

		id, err := s.client.Incr(ctx, s.key(keyUserSequence)).Result()
		if err != nil {
			return err
		}
		u := &domain.User{ID: id, Username: username, Enabled: true, CreatedAt: s.now()}
		data, err := json.Marshal(u)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, usernameKey, id, 0)
			pipe.Set(ctx, s.key(keyUser, id), data, 0)
			return nil
		})
		if err == nil {
			user = u
		}
		return err
	}, usernameKey)

	if errors.Is(err, domain.ErrConcurrencyConflict) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}
	if err != nil {
		return nil, wrapUnlessDomain(ErrMsgFailedToCreateUser, err)
	}
	return user, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	data, err := s.client.Get(ctx, s.key(keyUser, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

// wrapUnlessDomain passes domain sentinels through unchanged and wraps driver errors
func wrapUnlessDomain(msg string, err error) error {
	for _, sentinel := range []error{
		domain.ErrConcurrencyConflict,
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrRewardAlreadyClaimed,
		domain.ErrUsernameTaken,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
