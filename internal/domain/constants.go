package domain

// Money arithmetic
const (
	// MoneyScale is the number of decimal places kept for every monetary value
	MoneyScale int32 = 2
)

// Reward outcome messages
const (
	MsgRewardWon  = "Congratulations! You won the jackpot!"
	MsgRewardLost = "Better luck next time!"
)

// Bet processing statuses reported back to submitters
const (
	BetStatusProcessed = "PROCESSED"
	BetStatusError     = "ERROR"
)
