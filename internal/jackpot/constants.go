package jackpot

// ============================================================================
// Log Messages
// ============================================================================

// Service log messages
const (
	LogMsgProcessBetCalled       = "ProcessBet called"
	LogMsgEvaluateRewardCalled   = "EvaluateReward called"
	LogMsgRetriesExhausted       = "Conflict retries exhausted"
	LogMsgRewardAlreadyKnown     = "Bet already won, returning existing reward"
	LogMsgUserRegistered         = "User registered"
	LogMsgShuttingDownService    = "Shutting down jackpot service..."
	LogMsgServiceShutdownDone    = "Jackpot service shutdown complete"
	LogMsgServiceShutdownForced  = "Jackpot service shutdown timed out waiting for event publishing"
	LogMsgConfigLoaded           = "Jackpot configuration loaded"
	LogMsgJackpotConfigInserted  = "Jackpot created from configuration"
	LogMsgJackpotConfigRefreshed = "Jackpot policies refreshed from configuration"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToProcessBet     = "failed to process bet"
	ErrContextFailedToEvaluateReward = "failed to evaluate reward"
	ErrContextFailedToFindReward     = "failed to look up reward"
	ErrContextFailedToFindBet        = "failed to look up contribution"
	ErrContextFailedToReadConfig     = "failed to read jackpot config"
	ErrContextFailedToParseConfig    = "failed to parse jackpot config"
	ErrContextSchemaValidation       = "schema validation failed for"
	ErrContextFailedToSyncJackpot    = "failed to sync jackpot"
)

// Configuration error messages
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoJackpotsDefined  = "no jackpots defined"
	ErrMsgDuplicateJackpotID = "duplicate jackpot ID"
	ErrMsgInvalidJackpotDef  = "invalid jackpot"
)
