package jackpot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/validation"
)

// Config is the JSON jackpot configuration file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Jackpots []Def `json:"jackpots"`
}

// Def is a single jackpot definition
type Def struct {
	JackpotID        string          `json:"jackpot_id"`
	InitialPoolValue decimal.Decimal `json:"initial_pool_value"`
	Contribution     ContributionDef `json:"contribution"`
	Reward           RewardDef       `json:"reward"`
}

// ContributionDef holds the fields of either contribution variant
type ContributionDef struct {
	Type           domain.PolicyType   `json:"type"`
	Percentage     decimal.NullDecimal `json:"percentage"`
	BasePercentage decimal.NullDecimal `json:"base_percentage"`
	DecayRate      decimal.NullDecimal `json:"decay_rate"`
}

// RewardDef holds the fields of either reward variant
type RewardDef struct {
	Type       domain.PolicyType   `json:"type"`
	Chance     decimal.NullDecimal `json:"chance"`
	BaseChance decimal.NullDecimal `json:"base_chance"`
	Increment  decimal.NullDecimal `json:"increment"`
	Threshold  decimal.NullDecimal `json:"threshold"`
}

// Jackpot builds a fresh, validated jackpot whose pool starts at the initial value
func (d Def) Jackpot() (*domain.Jackpot, error) {
	rec := domain.PolicyRecord{
		ContributionType:                   d.Contribution.Type,
		FixedContributionPercentage:        d.Contribution.Percentage,
		VariableContributionBasePercentage: d.Contribution.BasePercentage,
		VariableContributionDecayRate:      d.Contribution.DecayRate,
		RewardType:                         d.Reward.Type,
		FixedRewardChance:                  d.Reward.Chance,
		VariableRewardBaseChance:           d.Reward.BaseChance,
		VariableRewardIncrement:            d.Reward.Increment,
		VariableRewardThreshold:            d.Reward.Threshold,
	}

	contribution, reward, err := rec.Policies()
	if err != nil {
		return nil, err
	}

	initial := d.InitialPoolValue.Round(domain.MoneyScale)
	j := &domain.Jackpot{
		ID:               d.JackpotID,
		InitialPoolValue: initial,
		CurrentPoolValue: initial,
		Contribution:     contribution,
		Reward:           reward,
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// SyncStore is the storage surface needed to apply a configuration
type SyncStore interface {
	ExistsJackpot(ctx context.Context, jackpotID string) (bool, error)
	UpsertJackpotConfig(ctx context.Context, jackpot *domain.Jackpot) error
}

// SyncResult counts what a sync changed
type SyncResult struct {
	JackpotsInserted int
	JackpotsUpdated  int
}

// Loader reads, validates and applies jackpot configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToStore(ctx context.Context, config *Config, store SyncStore) (*SyncResult, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads a jackpot file and checks it against the JSON schema
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadConfig, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaPathJackpots); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrConfiguration, ErrContextSchemaValidation, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseConfig, err)
	}

	logger.Info(LogMsgConfigLoaded, "path", path, "version", config.Version, "jackpots", len(config.Jackpots))
	return &config, nil
}

// Validate applies the semantic checks the schema cannot express, such as
// unique IDs and a positive reward threshold
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgConfigNil)
	}
	if len(config.Jackpots) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgNoJackpotsDefined)
	}

	seen := make(map[string]bool, len(config.Jackpots))
	for i, def := range config.Jackpots {
		if seen[def.JackpotID] {
			return fmt.Errorf("%w: %s %q", domain.ErrConfiguration, ErrMsgDuplicateJackpotID, def.JackpotID)
		}
		seen[def.JackpotID] = true

		if _, err := def.Jackpot(); err != nil {
			return fmt.Errorf("%s at index %d (%q): %w", ErrMsgInvalidJackpotDef, i, def.JackpotID, err)
		}
	}
	return nil
}

// SyncToStore creates missing jackpots and refreshes the policies of existing ones.
// Existing pool values and versions are left alone.
func (l *loader) SyncToStore(ctx context.Context, config *Config, store SyncStore) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, def := range config.Jackpots {
		j, err := def.Jackpot()
		if err != nil {
			return result, fmt.Errorf("%s %s: %w", ErrContextFailedToSyncJackpot, def.JackpotID, err)
		}

		exists, err := store.ExistsJackpot(ctx, j.ID)
		if err != nil {
			return result, fmt.Errorf("%s %s: %w", ErrContextFailedToSyncJackpot, j.ID, err)
		}

		if err := store.UpsertJackpotConfig(ctx, j); err != nil {
			return result, fmt.Errorf("%s %s: %w", ErrContextFailedToSyncJackpot, j.ID, err)
		}

		if exists {
			result.JackpotsUpdated++
			log.Debug(LogMsgJackpotConfigRefreshed, "jackpotID", j.ID)
		} else {
			result.JackpotsInserted++
			log.Info(LogMsgJackpotConfigInserted, "jackpotID", j.ID, "initialPool", j.InitialPoolValue)
		}
	}

	return result, nil
}
