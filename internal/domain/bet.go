package domain

import "github.com/shopspring/decimal"

// BetRequest is a bet submitted for contribution processing
type BetRequest struct {
	BetID     string          `json:"bet_id"`
	UserID    int64           `json:"user_id"`
	JackpotID string          `json:"jackpot_id"`
	BetAmount decimal.Decimal `json:"bet_amount"`
}
