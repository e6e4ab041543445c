package outcome

import "github.com/shopspring/decimal"

// ============================================================================
// Contribution Bounds
// ============================================================================

var (
	// MinContribution is the smallest amount a single stake may add to a pool
	MinContribution = decimal.RequireFromString("0.01")

	// MinVariablePercentage is the floor for a decayed contribution percentage
	MinVariablePercentage = decimal.NewFromInt(1)

	// MaxPercentage caps every percentage-based value
	MaxPercentage = decimal.NewFromInt(100)

	// PoolDecayUnit is the pool size that one unit of decay applies to
	PoolDecayUnit = decimal.NewFromInt(1000)
)

// PercentScale converts a [0,1) sample into percent units
const PercentScale = 100.0

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNilContributionPolicy = "contribution policy is nil"
	ErrMsgNilRewardPolicy       = "reward policy is nil"
)
