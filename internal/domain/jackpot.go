package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PolicyType identifies the variant of a contribution or reward policy
type PolicyType string

const (
	PolicyTypeFixed    PolicyType = "FIXED"
	PolicyTypeVariable PolicyType = "VARIABLE"
)

// ContributionPolicy decides how much of a stake flows into the pool.
// Implementations are FixedContribution and VariableContribution.
type ContributionPolicy interface {
	Type() PolicyType
	Validate() error
	isContributionPolicy()
}

// RewardPolicy decides the chance that a single evaluation wins the pool.
// Implementations are FixedReward and VariableReward.
type RewardPolicy interface {
	Type() PolicyType
	Validate() error
	isRewardPolicy()
}

// FixedContribution takes a constant percentage of every stake
type FixedContribution struct {
	Percentage decimal.Decimal
}

// VariableContribution takes a percentage that decays as the pool grows
type VariableContribution struct {
	BasePercentage decimal.Decimal
	DecayRate      decimal.Decimal
}

// FixedReward wins with a constant chance (in percent)
type FixedReward struct {
	Chance decimal.Decimal
}

// VariableReward wins with a chance that grows with the pool, capped at 100
type VariableReward struct {
	BaseChance decimal.Decimal
	Increment  decimal.Decimal
	Threshold  decimal.Decimal
}

func (FixedContribution) Type() PolicyType    { return PolicyTypeFixed }
func (VariableContribution) Type() PolicyType { return PolicyTypeVariable }
func (FixedReward) Type() PolicyType          { return PolicyTypeFixed }
func (VariableReward) Type() PolicyType       { return PolicyTypeVariable }

func (FixedContribution) isContributionPolicy()    {}
func (VariableContribution) isContributionPolicy() {}
func (FixedReward) isRewardPolicy()                {}
func (VariableReward) isRewardPolicy()             {}

// Validate checks the percentage is within [0, 100]
func (p FixedContribution) Validate() error {
	if !inPercentRange(p.Percentage) {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidContributionPercentage)
	}
	return nil
}

// Validate checks the base percentage and decay rate
func (p VariableContribution) Validate() error {
	if !inPercentRange(p.BasePercentage) {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidContributionPercentage)
	}
	if p.DecayRate.IsNegative() {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidDecayRate)
	}
	return nil
}

// Validate checks the chance is within [0, 100]
func (p FixedReward) Validate() error {
	if !inPercentRange(p.Chance) {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidRewardChance)
	}
	return nil
}

// Validate checks the chance parameters; a non-positive threshold is a configuration defect
func (p VariableReward) Validate() error {
	if !inPercentRange(p.BaseChance) {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidRewardChance)
	}
	if p.Increment.IsNegative() {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidRewardIncrement)
	}
	if !p.Threshold.IsPositive() {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidRewardThreshold)
	}
	return nil
}

func inPercentRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

// Jackpot is a persistently accumulating pool with its contribution and reward rules.
// Version is the optimistic concurrency token; every committed mutation increments it.
type Jackpot struct {
	ID               string
	InitialPoolValue decimal.Decimal
	CurrentPoolValue decimal.Decimal
	Contribution     ContributionPolicy
	Reward           RewardPolicy
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the jackpot is usable by the contribution and reward engine
func (j *Jackpot) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("%w: %s", ErrValidation, ErrMsgJackpotIDRequired)
	}
	if j.InitialPoolValue.IsNegative() {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgNegativeInitialPool)
	}
	if j.Contribution == nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingContributionPolicy)
	}
	if err := j.Contribution.Validate(); err != nil {
		return err
	}
	if j.Reward == nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingRewardPolicy)
	}
	return j.Reward.Validate()
}

// PolicyRecord is the flattened, column-per-field form of a jackpot's policies.
// Stores persist it as-is; fields not used by the declared type are left null.
type PolicyRecord struct {
	ContributionType                   PolicyType          `json:"contribution_type"`
	FixedContributionPercentage        decimal.NullDecimal `json:"fixed_contribution_percentage"`
	VariableContributionBasePercentage decimal.NullDecimal `json:"variable_contribution_base_percentage"`
	VariableContributionDecayRate      decimal.NullDecimal `json:"variable_contribution_decay_rate"`
	RewardType                         PolicyType          `json:"reward_type"`
	FixedRewardChance                  decimal.NullDecimal `json:"fixed_reward_chance"`
	VariableRewardBaseChance           decimal.NullDecimal `json:"variable_reward_base_chance"`
	VariableRewardIncrement            decimal.NullDecimal `json:"variable_reward_increment"`
	VariableRewardThreshold            decimal.NullDecimal `json:"variable_reward_threshold"`
}

// Record flattens the jackpot policies for storage
func (j *Jackpot) Record() PolicyRecord {
	var rec PolicyRecord

	switch p := j.Contribution.(type) {
	case FixedContribution:
		rec.ContributionType = PolicyTypeFixed
		rec.FixedContributionPercentage = decimal.NewNullDecimal(p.Percentage)
	case VariableContribution:
		rec.ContributionType = PolicyTypeVariable
		rec.VariableContributionBasePercentage = decimal.NewNullDecimal(p.BasePercentage)
		rec.VariableContributionDecayRate = decimal.NewNullDecimal(p.DecayRate)
	}

	switch p := j.Reward.(type) {
	case FixedReward:
		rec.RewardType = PolicyTypeFixed
		rec.FixedRewardChance = decimal.NewNullDecimal(p.Chance)
	case VariableReward:
		rec.RewardType = PolicyTypeVariable
		rec.VariableRewardBaseChance = decimal.NewNullDecimal(p.BaseChance)
		rec.VariableRewardIncrement = decimal.NewNullDecimal(p.Increment)
		rec.VariableRewardThreshold = decimal.NewNullDecimal(p.Threshold)
	}

	return rec
}

// Policies rebuilds the typed policies from their stored form.
// A declared type whose required fields are null is a configuration defect.
func (rec PolicyRecord) Policies() (ContributionPolicy, RewardPolicy, error) {
	var contribution ContributionPolicy
	switch rec.ContributionType {
	case PolicyTypeFixed:
		if !rec.FixedContributionPercentage.Valid {
			return nil, nil, fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingFixedContributionFields)
		}
		contribution = FixedContribution{Percentage: rec.FixedContributionPercentage.Decimal}
	case PolicyTypeVariable:
		if !rec.VariableContributionBasePercentage.Valid || !rec.VariableContributionDecayRate.Valid {
			return nil, nil, fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingVariableContributionFields)
		}
		contribution = VariableContribution{
			BasePercentage: rec.VariableContributionBasePercentage.Decimal,
			DecayRate:      rec.VariableContributionDecayRate.Decimal,
		}
	default:
		return nil, nil, fmt.Errorf("%w: %s %q", ErrConfiguration, ErrMsgUnknownContributionType, rec.ContributionType)
	}

	var reward RewardPolicy
	switch rec.RewardType {
	case PolicyTypeFixed:
		if !rec.FixedRewardChance.Valid {
			return nil, nil, fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingFixedRewardFields)
		}
		reward = FixedReward{Chance: rec.FixedRewardChance.Decimal}
	case PolicyTypeVariable:
		if !rec.VariableRewardBaseChance.Valid || !rec.VariableRewardIncrement.Valid || !rec.VariableRewardThreshold.Valid {
			return nil, nil, fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgMissingVariableRewardFields)
		}
		reward = VariableReward{
			BaseChance: rec.VariableRewardBaseChance.Decimal,
			Increment:  rec.VariableRewardIncrement.Decimal,
			Threshold:  rec.VariableRewardThreshold.Decimal,
		}
	default:
		return nil, nil, fmt.Errorf("%w: %s %q", ErrConfiguration, ErrMsgUnknownRewardType, rec.RewardType)
	}

	return contribution, reward, nil
}

// jackpotJSON is the wire form of a Jackpot
type jackpotJSON struct {
	ID               string          `json:"jackpot_id"`
	InitialPoolValue decimal.Decimal `json:"initial_pool_value"`
	CurrentPoolValue decimal.Decimal `json:"current_pool_value"`
	PolicyRecord
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON renders the jackpot with its policies flattened
func (j Jackpot) MarshalJSON() ([]byte, error) {
	return json.Marshal(jackpotJSON{
		ID:               j.ID,
		InitialPoolValue: j.InitialPoolValue,
		CurrentPoolValue: j.CurrentPoolValue,
		PolicyRecord:     j.Record(),
		Version:          j.Version,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	})
}

// UnmarshalJSON reads the flattened wire form back into typed policies
func (j *Jackpot) UnmarshalJSON(data []byte) error {
	var raw jackpotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	contribution, reward, err := raw.PolicyRecord.Policies()
	if err != nil {
		return err
	}
	*j = Jackpot{
		ID:               raw.ID,
		InitialPoolValue: raw.InitialPoolValue,
		CurrentPoolValue: raw.CurrentPoolValue,
		Contribution:     contribution,
		Reward:           reward,
		Version:          raw.Version,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}
	return nil
}
