package contribution

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgProcessContributionCalled = "ProcessContribution called"
	LogMsgContributionApplied       = "Contribution applied"
	LogMsgContributionConflict      = "Contribution lost version race"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToCheckBet    = "failed to check existing contribution"
	ErrContextFailedToReadJackpot = "failed to read jackpot"
	ErrContextFailedToCompute     = "failed to compute contribution"
	ErrContextFailedToCommit      = "failed to commit contribution"
)
