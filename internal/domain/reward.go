package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reward records a bet winning a jackpot's entire pool
type Reward struct {
	BetID               string          `json:"bet_id"`
	UserID              int64           `json:"user_id"`
	JackpotID           string          `json:"jackpot_id"`
	JackpotRewardAmount decimal.Decimal `json:"jackpot_reward_amount"`
	CreatedAt           time.Time       `json:"created_at"`
}

// RewardOutcome is the caller-facing result of a reward evaluation
type RewardOutcome struct {
	BetID        string           `json:"bet_id"`
	WinsJackpot  bool             `json:"wins_jackpot"`
	RewardAmount *decimal.Decimal `json:"reward_amount,omitempty"`
	Message      string           `json:"message"`
	Reward       *Reward          `json:"-"`
}

// NewRewardOutcome builds the outcome for betID from an optional reward
func NewRewardOutcome(betID string, reward *Reward) *RewardOutcome {
	if reward == nil {
		return &RewardOutcome{
			BetID:   betID,
			Message: MsgRewardLost,
		}
	}
	amount := reward.JackpotRewardAmount
	return &RewardOutcome{
		BetID:        betID,
		WinsJackpot:  true,
		RewardAmount: &amount,
		Message:      MsgRewardWon,
		Reward:       reward,
	}
}
