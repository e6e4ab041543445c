package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution records one accepted bet's addition to a jackpot pool.
// CurrentJackpotAmount is the pool value immediately after this contribution was applied.
type Contribution struct {
	BetID                string          `json:"bet_id"`
	UserID               int64           `json:"user_id"`
	JackpotID            string          `json:"jackpot_id"`
	StakeAmount          decimal.Decimal `json:"stake_amount"`
	ContributionAmount   decimal.Decimal `json:"contribution_amount"`
	CurrentJackpotAmount decimal.Decimal `json:"current_jackpot_amount"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Rounded returns a copy with every monetary field at MoneyScale
func (c Contribution) Rounded() Contribution {
	c.StakeAmount = c.StakeAmount.Round(MoneyScale)
	c.ContributionAmount = c.ContributionAmount.Round(MoneyScale)
	c.CurrentJackpotAmount = c.CurrentJackpotAmount.Round(MoneyScale)
	return c
}
