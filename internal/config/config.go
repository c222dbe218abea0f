// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the deal file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/flipmetrics/flipcalc/internal/engine"
	"github.com/flipmetrics/flipcalc/pkg/constants"
	"github.com/flipmetrics/flipcalc/pkg/statedefaults"
)

// Configuration holds all configuration for a flipcalc run.
type Configuration struct {
	Deal          engine.DealInput
	FeeProfile    string        `yaml:"feeProfile,omitempty"`    // hideout (default) or standard
	MaxLTVPercent float64       `yaml:"maxLTVPercent,omitempty"` // fraction; 0 means program default
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ResolveFeeProfile maps the configured profile name onto an engine
// FeeProfile. The community profile is the historical default.
func (conf *Configuration) ResolveFeeProfile() (engine.FeeProfile, error) {
	switch strings.ToLower(strings.TrimSpace(conf.FeeProfile)) {
	case "", "hideout":
		return engine.HideoutFeeProfile(), nil
	case "standard", "normal":
		return engine.StandardFeeProfile(), nil
	default:
		return engine.FeeProfile{}, fmt.Errorf("unknown fee profile %q", conf.FeeProfile)
	}
}

// ResolveMaxLTV returns the configured maximum LTV fraction or the
// program default when unset.
func (conf *Configuration) ResolveMaxLTV() float64 {
	if conf.MaxLTVPercent > 0 {
		return conf.MaxLTVPercent
	}
	return constants.DefaultMaxLTVPercent
}

// ApplyStateDefaults pre-populates zero-valued deal fields from the
// state and county default tables. Explicitly configured values are
// never overwritten.
func (conf *Configuration) ApplyStateDefaults() {
	deal := &conf.Deal

	if defaults, ok := statedefaults.Lookup(deal.State); ok {
		if deal.TransferTaxRate == 0 {
			deal.TransferTaxRate = defaults.TransferTaxRate
		}
		if deal.TitleInsuranceRate == 0 {
			deal.TitleInsuranceRate = defaults.TitleInsuranceRate
		}
		if deal.CPLFee == 0 {
			deal.CPLFee = defaults.CPLFee
		}
	}

	county := statedefaults.CountyLookup(deal.State, deal.County)
	if deal.InspectionCost == 0 {
		deal.InspectionCost = county.InspectionCost
	}
	if deal.AppraisalCost == 0 {
		deal.AppraisalCost = county.AppraisalCost
	}
}
