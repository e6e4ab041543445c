package reward

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEvaluateRewardCalled  = "EvaluateReward called"
	LogMsgNotEligible           = "Bet not eligible for reward evaluation"
	LogMsgExistingRewardForBet  = "Returning existing reward for bet"
	LogMsgJackpotAlreadyClaimed = "Jackpot already has a reward"
	LogMsgRewardDrawLost        = "Reward draw lost"
	LogMsgRewardLostRace        = "Reward claimed by a concurrent evaluation"
	LogMsgRewardCommitted       = "Jackpot won, pool reset"
)

// Eligibility failure reasons
const (
	ReasonJackpotMissing      = "jackpot_missing"
	ReasonUserMissing         = "user_missing"
	ReasonContributionMissing = "contribution_missing"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedEligibility    = "failed to check reward eligibility"
	ErrContextFailedToFindReward   = "failed to look up reward"
	ErrContextFailedToReadJackpot  = "failed to read jackpot"
	ErrContextFailedToComputeOdds  = "failed to compute win chance"
	ErrContextFailedToCommitReward = "failed to commit reward"
)
