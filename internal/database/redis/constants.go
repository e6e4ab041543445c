package redis

// Key layout, relative to the store prefix
const (
	DefaultKeyPrefix = "jackpot:"

	keyJackpot             = "jackpot:%s"
	keyJackpotIndex        = "jackpots"
	keyContribution        = "contribution:%s"
	keyJackpotContribution = "contributions:jackpot:%s"
	keyUserContribution    = "contributions:user:%d"
	keyRewardByBet         = "reward:bet:%s"
	keyRewardByJackpot     = "reward:jackpot:%s"
	keyUserReward          = "rewards:user:%d"
	keyUser                = "user:%d"
	keyUsername            = "username:%s"
	keyUserSequence        = "users:seq"
)

// Jackpot hash fields
const (
	fieldInitial   = "initial_pool_value"
	fieldCurrent   = "current_pool_value"
	fieldPolicy    = "policy"
	fieldVersion   = "version"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// Error Messages
const (
	ErrMsgFailedToReadJackpot        = "failed to read jackpot"
	ErrMsgFailedToWriteJackpot       = "failed to write jackpot"
	ErrMsgFailedToUpsertJackpot      = "failed to upsert jackpot config"
	ErrMsgFailedToListJackpots       = "failed to list jackpots"
	ErrMsgFailedToDecodeJackpot      = "failed to decode jackpot"
	ErrMsgFailedToCommitContribution = "failed to commit contribution"
	ErrMsgFailedToQueryContributions = "failed to query contributions"
	ErrMsgFailedToCommitReward       = "failed to commit reward"
	ErrMsgFailedToQueryRewards       = "failed to query rewards"
	ErrMsgFailedToCreateUser         = "failed to create user"
	ErrMsgFailedToGetUser            = "failed to get user"
	ErrMsgFailedExistenceCheck       = "failed existence check"
)
