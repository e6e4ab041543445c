package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// Connection pragmas; a single open connection serialises writers
const (
	BusyTimeoutMillis = 5000
	MaxOpenConns      = 1
	DirPermissions    = 0755
	MemoryPath        = ":memory:"
)

// Unique index columns as reported by SQLite constraint errors
const (
	ColumnContributionsBetID = "contributions.bet_id"
	ColumnRewardsBetID       = "rewards.bet_id"
	ColumnRewardsJackpotID   = "rewards.jackpot_id"
	ColumnUsersUsername      = "users.username"

	uniqueFailedPrefix = "UNIQUE constraint failed: "
)

// Error Messages
const (
	ErrMsgFailedToOpen               = "failed to open sqlite database"
	ErrMsgFailedToCreateDir          = "failed to create database directory"
	ErrMsgFailedToBeginTransaction   = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction  = "failed to commit transaction"
	ErrMsgFailedToReadJackpot        = "failed to read jackpot"
	ErrMsgFailedToWriteJackpot       = "failed to write jackpot"
	ErrMsgFailedToUpsertJackpot      = "failed to upsert jackpot config"
	ErrMsgFailedToListJackpots       = "failed to list jackpots"
	ErrMsgFailedToDecodePolicies     = "failed to decode jackpot policies"
	ErrMsgFailedToInsertContribution = "failed to insert contribution"
	ErrMsgFailedToQueryContributions = "failed to query contributions"
	ErrMsgFailedToInsertReward       = "failed to insert reward"
	ErrMsgFailedToQueryRewards       = "failed to query rewards"
	ErrMsgFailedToInsertUser         = "failed to insert user"
	ErrMsgFailedToGetUser            = "failed to get user"
	ErrMsgFailedExistenceCheck       = "failed existence check"
	ErrMsgFailedToInsertEvent        = "failed to insert event"
	ErrMsgFailedToQueryEvents        = "failed to query events"
	ErrMsgFailedToCleanupEvents      = "failed to cleanup events"
)

// Log Messages
const (
	LogMsgOpened           = "Opened sqlite database"
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
