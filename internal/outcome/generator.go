// Package outcome computes contribution amounts and win probabilities from a
// jackpot's policies. Nothing here performs I/O; randomness is injected.
package outcome

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// ComputeContribution returns the amount of stake that flows into a pool of poolValue
// under policy, rounded half-up to cents and never below MinContribution.
func ComputeContribution(policy domain.ContributionPolicy, stake, poolValue decimal.Decimal) (decimal.Decimal, error) {
	if policy == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgNilContributionPolicy)
	}
	if err := policy.Validate(); err != nil {
		return decimal.Zero, err
	}

	var percentage decimal.Decimal
	switch p := policy.(type) {
	case domain.FixedContribution:
		percentage = p.Percentage
	case domain.VariableContribution:
		percentage = EffectivePercentage(p, poolValue)
	default:
		return decimal.Zero, fmt.Errorf("%w: %s %T", domain.ErrConfiguration, domain.ErrMsgUnknownContributionType, policy)
	}

	return applyPercentage(stake, percentage), nil
}

// EffectivePercentage is the decayed percentage a variable policy applies at poolValue,
// clamped to [MinVariablePercentage, MaxPercentage]
func EffectivePercentage(p domain.VariableContribution, poolValue decimal.Decimal) decimal.Decimal {
	units := poolValue.Div(PoolDecayUnit).Round(domain.MoneyScale)
	raw := p.BasePercentage.Sub(p.DecayRate.Mul(units))
	return clamp(raw, MinVariablePercentage, MaxPercentage)
}

func applyPercentage(stake, percentage decimal.Decimal) decimal.Decimal {
	amount := stake.Mul(percentage).Div(MaxPercentage)
	return decimal.Max(MinContribution, amount).Round(domain.MoneyScale)
}

// ComputeWinChance returns the chance in percent that one evaluation wins a pool of poolValue
func ComputeWinChance(policy domain.RewardPolicy, poolValue decimal.Decimal) (decimal.Decimal, error) {
	if policy == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgNilRewardPolicy)
	}
	if err := policy.Validate(); err != nil {
		return decimal.Zero, err
	}

	switch p := policy.(type) {
	case domain.FixedReward:
		return p.Chance, nil
	case domain.VariableReward:
		growth := p.Increment.Mul(poolValue).Div(p.Threshold)
		return decimal.Min(MaxPercentage, p.BaseChance.Add(growth)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s %T", domain.ErrConfiguration, domain.ErrMsgUnknownRewardType, policy)
	}
}

// DecideWin draws one sample from src and reports whether it falls under chancePercent
func DecideWin(chancePercent decimal.Decimal, src RandomSource) bool {
	u := decimal.NewFromFloat(src.Sample() * PercentScale)
	return u.LessThan(chancePercent)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
