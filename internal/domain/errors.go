package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Taxonomy
	ErrMsgValidation          = "validation failed"
	ErrMsgNotFound            = "not found"
	ErrMsgConfiguration       = "jackpot misconfigured"
	ErrMsgConcurrencyConflict = "concurrent modification detected"
	ErrMsgRetriesExhausted    = "retries exhausted"

	// Entity lookups
	ErrMsgJackpotNotFound      = "jackpot"
	ErrMsgUserNotFound         = "user"
	ErrMsgContributionNotFound = "contribution"
	ErrMsgRewardNotFound       = "reward"

	// Uniqueness
	ErrMsgDuplicateBet         = "bet already processed"
	ErrMsgRewardAlreadyClaimed = "reward already claimed"
	ErrMsgUsernameTaken        = "username already taken"

	// Input validation
	ErrMsgBetIDRequired     = "bet ID cannot be null or empty"
	ErrMsgUserIDRequired    = "user ID cannot be null"
	ErrMsgJackpotIDRequired = "jackpot ID cannot be null or empty"
	ErrMsgStakeRequired     = "stake amount cannot be null"
	ErrMsgStakeNegative     = "stake amount cannot be negative"
	ErrMsgUsernameRequired  = "username cannot be empty"

	// Policy configuration
	ErrMsgMissingContributionPolicy         = "contribution policy is missing"
	ErrMsgMissingRewardPolicy               = "reward policy is missing"
	ErrMsgMissingFixedContributionFields    = "fixed contribution percentage is missing"
	ErrMsgMissingVariableContributionFields = "variable contribution base percentage or decay rate is missing"
	ErrMsgMissingFixedRewardFields          = "fixed reward chance is missing"
	ErrMsgMissingVariableRewardFields       = "variable reward base chance, increment or threshold is missing"
	ErrMsgUnknownContributionType           = "unknown contribution type"
	ErrMsgUnknownRewardType                 = "unknown reward type"
	ErrMsgInvalidContributionPercentage     = "contribution percentage must be within [0, 100]"
	ErrMsgInvalidDecayRate                  = "decay rate cannot be negative"
	ErrMsgInvalidRewardChance               = "reward chance must be within [0, 100]"
	ErrMsgInvalidRewardIncrement            = "reward increment cannot be negative"
	ErrMsgInvalidRewardThreshold            = "reward threshold must be greater than zero"
	ErrMsgNegativeInitialPool               = "initial pool value cannot be negative"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrValidation marks bad caller input; never retried
	ErrValidation = errors.New(ErrMsgValidation)

	// ErrNotFound marks an unknown entity; never retried
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrConfiguration marks a jackpot whose policy cannot be evaluated
	ErrConfiguration = errors.New(ErrMsgConfiguration)

	// ErrConcurrencyConflict means a conditional write lost to a concurrent writer.
	// Recoverable by re-running the whole operation from its initial read.
	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	// ErrRetriesExhausted wraps the last conflict once a retry budget is spent
	ErrRetriesExhausted = errors.New(ErrMsgRetriesExhausted)
)

// Specific errors wrapping the taxonomy above
var (
	ErrJackpotNotFound      = fmt.Errorf("%s %w", ErrMsgJackpotNotFound, ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("%s %w", ErrMsgUserNotFound, ErrNotFound)
	ErrContributionNotFound = fmt.Errorf("%s %w", ErrMsgContributionNotFound, ErrNotFound)
	ErrRewardNotFound       = fmt.Errorf("%s %w", ErrMsgRewardNotFound, ErrNotFound)

	ErrDuplicateBet     = fmt.Errorf("%w: %s", ErrValidation, ErrMsgDuplicateBet)
	ErrUsernameTaken    = fmt.Errorf("%w: %s", ErrValidation, ErrMsgUsernameTaken)
	ErrBetIDRequired    = fmt.Errorf("%w: %s", ErrValidation, ErrMsgBetIDRequired)
	ErrUserIDRequired   = fmt.Errorf("%w: %s", ErrValidation, ErrMsgUserIDRequired)
	ErrJackpotIDMissing = fmt.Errorf("%w: %s", ErrValidation, ErrMsgJackpotIDRequired)
	ErrStakeRequired    = fmt.Errorf("%w: %s", ErrValidation, ErrMsgStakeRequired)
	ErrStakeNegative    = fmt.Errorf("%w: %s", ErrValidation, ErrMsgStakeNegative)
	ErrUsernameRequired = fmt.Errorf("%w: %s", ErrValidation, ErrMsgUsernameRequired)

	// ErrRewardAlreadyClaimed is returned by stores when a reward insert hits a
	// uniqueness constraint on bet or jackpot.
	ErrRewardAlreadyClaimed = errors.New(ErrMsgRewardAlreadyClaimed)
)
