// Package memory is a map-backed storage backend implementing every
// repository contract. Conditional writes have the same semantics as the
// SQL and redis backends.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// Store keeps all records in process memory
type Store struct {
	mu sync.RWMutex

	jackpots         map[string]*domain.Jackpot
	contributions    map[string]domain.Contribution
	contributionSeq  []string
	rewardsByBet     map[string]domain.Reward
	rewardsByJackpot map[string]string
	rewardSeq        []string
	users            map[int64]domain.User
	usernames        map[string]int64
	nextUserID       int64

	now func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		jackpots:         make(map[string]*domain.Jackpot),
		contributions:    make(map[string]domain.Contribution),
		rewardsByBet:     make(map[string]domain.Reward),
		rewardsByJackpot: make(map[string]string),
		users:            make(map[int64]domain.User),
		usernames:        make(map[string]int64),
		now:              time.Now,
	}
}

func cloneJackpot(j *domain.Jackpot) *domain.Jackpot {
	c := *j
	return &c
}

// ExistsJackpot implements [repository.Eligibility]
func (s *Store) ExistsJackpot(ctx context.Context, jackpotID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.jackpots[jackpotID]
	return ok, nil
}

// ExistsUser implements [repository.Eligibility]
func (s *Store) ExistsUser(ctx context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

// ExistsContributionForBet implements [repository.Eligibility]
func (s *Store) ExistsContributionForBet(ctx context.Context, betID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.contributions[betID]
	return ok, nil
}

func (s *Store) ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jackpots[jackpotID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	return cloneJackpot(j), nil
}

func (s *Store) WriteJackpotIf(ctx context.Context, jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJackpotIfLocked(jackpotID, newPool, expectedVersion)
}

func (s *Store) writeJackpotIfLocked(jackpotID string, newPool decimal.Decimal, expectedVersion int64) (int64, error) {
	j, ok := s.jackpots[jackpotID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrJackpotNotFound, jackpotID)
	}
	if j.Version != expectedVersion {
		return 0, domain.ErrConcurrencyConflict
	}
	j.CurrentPoolValue = newPool.Round(domain.MoneyScale)
	j.Version++
	j.UpdatedAt = s.now().UTC()
	return j.Version, nil
}

func (s *Store) UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if existing, ok := s.jackpots[jackpot.ID]; ok {
		existing.Contribution = jackpot.Contribution
		existing.Reward = jackpot.Reward
		existing.Version++
		existing.UpdatedAt = now
		return nil
	}

	j := cloneJackpot(jackpot)
	j.CurrentPoolValue = jackpot.InitialPoolValue
	j.Version = 0
	j.CreatedAt = now
	j.UpdatedAt = now
	s.jackpots[j.ID] = j
	return nil
}

func (s *Store) ListJackpots(ctx context.Context) ([]domain.Jackpot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Jackpot, 0, len(s.jackpots))
	for _, j := range s.jackpots {
		out = append(out, *j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (s *Store) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.contributions[c.BetID]; dup {
		return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateBet, c.BetID)
	}
	stored := c.Rounded()
	version, err := s.writeJackpotIfLocked(c.JackpotID, stored.CurrentJackpotAmount, expectedVersion)
	if err != nil {
		return 0, err
	}
	s.contributions[c.BetID] = stored
	s.contributionSeq = append(s.contributionSeq, c.BetID)
	return version, nil
}

func (s *Store) FindContributionForBet(ctx context.Context, betID string) (*domain.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contributions[betID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) ListContributionsByJackpot(ctx context.Context, jackpotID string, limit int) ([]domain.Contribution, error) {
	return s.listContributions(limit, func(c domain.Contribution) bool { return c.JackpotID == jackpotID }), nil
}

func (s *Store) ListContributionsByUser(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error) {
	return s.listContributions(limit, func(c domain.Contribution) bool { return c.UserID == userID }), nil
}

// listContributions walks newest first
func (s *Store) listContributions(limit int, keep func(domain.Contribution) bool) []domain.Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)
	out := []domain.Contribution{}
	for i := len(s.contributionSeq) - 1; i >= 0 && len(out) < limit; i-- {
		c := s.contributions[s.contributionSeq[i]]
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rewardsByBet[betID]
	return ok, nil
}

func (s *Store) ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rewardsByJackpot[jackpotID]
	return ok, nil
}

func (s *Store) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rewardsByBet[betID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *Store) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.rewardsByBet[r.BetID]; dup {
		return nil, fmt.Errorf("%w: bet %s", domain.ErrRewardAlreadyClaimed, r.BetID)
	}
	if _, dup := s.rewardsByJackpot[r.JackpotID]; dup {
		return nil, fmt.Errorf("%w: jackpot %s", domain.ErrRewardAlreadyClaimed, r.JackpotID)
	}
	if _, err := s.writeJackpotIfLocked(r.JackpotID, resetPool, expectedVersion); err != nil {
		return nil, err
	}

	stored := *r
	stored.JackpotRewardAmount = stored.JackpotRewardAmount.Round(domain.MoneyScale)
	s.rewardsByBet[r.BetID] = stored
	s.rewardsByJackpot[r.JackpotID] = r.BetID
	s.rewardSeq = append(s.rewardSeq, r.BetID)
	return &stored, nil
}

func (s *Store) ListRewardsByUser(ctx context.Context, userID int64, limit int) ([]domain.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = repository.NormalizeLimit(limit, repository.DefaultListLimit, repository.MaxListLimit)
	out := []domain.Reward{}
	for i := len(s.rewardSeq) - 1; i >= 0 && len(out) < limit; i-- {
		r := s.rewardsByBet[s.rewardSeq[i]]
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[username]; taken {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}
	s.nextUserID++
	u := domain.User{
		ID:        s.nextUserID,
		Username:  username,
		Enabled:   true,
		CreatedAt: s.now().UTC(),
	}
	s.users[u.ID] = u
	s.usernames[username] = u.ID
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}
	return &u, nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }
