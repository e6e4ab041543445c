package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeContributionApplied is published after a contribution grows a pool
	EventTypeContributionApplied = "jackpot.contribution.applied"

	// EventTypeJackpotWon is published after a reward commit resets a pool
	EventTypeJackpotWon = "jackpot.reward.won"
)
