package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Unique constraint names from the jackpot schema migration
const (
	ConstraintContributionsBetID = "contributions_bet_id_key"
	ConstraintRewardsBetID       = "rewards_bet_id_key"
	ConstraintRewardsJackpotID   = "rewards_jackpot_id_key"
	ConstraintUsersUsername      = "users_username_key"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Jackpot Operations
const (
	ErrMsgFailedToReadJackpot    = "failed to read jackpot"
	ErrMsgFailedToWriteJackpot   = "failed to write jackpot"
	ErrMsgFailedToUpsertJackpot  = "failed to upsert jackpot config"
	ErrMsgFailedToListJackpots   = "failed to list jackpots"
	ErrMsgFailedToDecodePolicies = "failed to decode jackpot policies"
)

// Error Messages - Contribution and Reward Operations
const (
	ErrMsgFailedToInsertContribution = "failed to insert contribution"
	ErrMsgFailedToQueryContributions = "failed to query contributions"
	ErrMsgFailedToInsertReward       = "failed to insert reward"
	ErrMsgFailedToQueryRewards       = "failed to query rewards"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToGetUser    = "failed to get user"
)

// Error Messages - Existence Checks
const (
	ErrMsgFailedExistenceCheck = "failed existence check"
)

// Error Messages - Event Log
const (
	ErrMsgFailedToInsertEvent   = "failed to insert event"
	ErrMsgFailedToQueryEvents   = "failed to query events"
	ErrMsgFailedToCleanupEvents = "failed to cleanup events"
)
