package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flipmetrics/flipcalc/pkg/constants"
)

const sampleDeal = `
deal:
  address: 123 Lakeview Dr
  state: PA
  county: Wayne County
  purchasePrice: 100000
  appraisedValue: 200000
  rehabBudget: 30000
  arv: 200000
  financingPercent: 100
  loanType: HARD_MONEY
  interestRate: 12
  originationPoints: 1
  holdingPeriodMonths: 6
  exitStrategy: SELL
  liquidity: 20000
  ficoScore: 700
  experienceLevel: 2
feeProfile: hideout
maxLTVPercent: 0.7
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deal.yaml")
	if err := os.WriteFile(path, []byte(sampleDeal), 0644); err != nil {
		t.Fatalf("failed to write sample config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	t.Run("Non-existent config file", func(t *testing.T) {
		if _, err := LoadConfiguration("nonexistent.yaml"); err == nil {
			t.Errorf("LoadConfiguration() expected error but got none")
		}
	})

	t.Run("Sample deal", func(t *testing.T) {
		conf, err := LoadConfiguration(writeSampleConfig(t))
		if err != nil {
			t.Fatalf("LoadConfiguration() error = %v", err)
		}

		if conf.Deal.PurchasePrice != 100000 {
			t.Errorf("PurchasePrice = %v, expected 100000", conf.Deal.PurchasePrice)
		}
		if conf.Deal.ARV != 200000 {
			t.Errorf("ARV = %v, expected 200000", conf.Deal.ARV)
		}
		if conf.Deal.State != "PA" {
			t.Errorf("State = %q, expected PA", conf.Deal.State)
		}
		if string(conf.Deal.LoanType) != "HARD_MONEY" {
			t.Errorf("LoanType = %q, expected HARD_MONEY", conf.Deal.LoanType)
		}
		if conf.Deal.HoldingPeriodMonths != 6 {
			t.Errorf("HoldingPeriodMonths = %d, expected 6", conf.Deal.HoldingPeriodMonths)
		}
		if conf.FeeProfile != "hideout" {
			t.Errorf("FeeProfile = %q, expected hideout", conf.FeeProfile)
		}
		if conf.MaxLTVPercent != 0.7 {
			t.Errorf("MaxLTVPercent = %v, expected 0.7", conf.MaxLTVPercent)
		}
		if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
			t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
		}
		if conf.Output.Format != "csv" {
			t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
		}
	})
}

func TestResolveFeeProfile(t *testing.T) {
	tests := []struct {
		name          string
		profile       string
		wantErr       bool
		wantCommunity bool
	}{
		{
			name:          "Empty defaults to hideout",
			profile:       "",
			wantCommunity: true,
		},
		{
			name:          "Hideout",
			profile:       "hideout",
			wantCommunity: true,
		},
		{
			name:    "Standard",
			profile: "standard",
		},
		{
			name:    "Normal alias",
			profile: "NORMAL",
		},
		{
			name:    "Unknown profile",
			profile: "offshore",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{FeeProfile: tt.profile}
			profile, err := conf.ResolveFeeProfile()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveFeeProfile() error = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if profile.CommunityTransferFee != tt.wantCommunity || profile.CommunityDues != tt.wantCommunity {
				t.Errorf("ResolveFeeProfile() = %+v, expected community flags %t", profile, tt.wantCommunity)
			}
			// Both profiles still bill town tax, school tax and water.
			if !profile.TownTax || !profile.SchoolTax || !profile.WaterSewer {
				t.Errorf("ResolveFeeProfile() = %+v, expected municipal flags on", profile)
			}
		})
	}
}

func TestResolveMaxLTV(t *testing.T) {
	conf := &Configuration{}
	if got := conf.ResolveMaxLTV(); got != constants.DefaultMaxLTVPercent {
		t.Errorf("ResolveMaxLTV() = %v, expected program default %v", got, constants.DefaultMaxLTVPercent)
	}

	conf.MaxLTVPercent = 0.7
	if got := conf.ResolveMaxLTV(); got != 0.7 {
		t.Errorf("ResolveMaxLTV() = %v, expected 0.7", got)
	}
}

func TestApplyStateDefaults(t *testing.T) {
	conf := &Configuration{}
	conf.Deal.State = "PA"
	conf.Deal.County = "Wayne County"

	conf.ApplyStateDefaults()

	if conf.Deal.TransferTaxRate != 1.0 {
		t.Errorf("TransferTaxRate = %v, expected 1.0", conf.Deal.TransferTaxRate)
	}
	if conf.Deal.CPLFee != 125 {
		t.Errorf("CPLFee = %v, expected 125", conf.Deal.CPLFee)
	}
	// Pennsylvania leaves the flat title rate zero so the rate table
	// applies downstream.
	if conf.Deal.TitleInsuranceRate != 0 {
		t.Errorf("TitleInsuranceRate = %v, expected 0", conf.Deal.TitleInsuranceRate)
	}
	if conf.Deal.InspectionCost != 330 {
		t.Errorf("InspectionCost = %v, expected 330 for Wayne County", conf.Deal.InspectionCost)
	}
	if conf.Deal.AppraisalCost != 410 {
		t.Errorf("AppraisalCost = %v, expected 410 for Wayne County", conf.Deal.AppraisalCost)
	}
}

func TestApplyStateDefaultsKeepsExplicitValues(t *testing.T) {
	conf := &Configuration{}
	conf.Deal.State = "OH"
	conf.Deal.TransferTaxRate = 2.5
	conf.Deal.InspectionCost = 999

	conf.ApplyStateDefaults()

	if conf.Deal.TransferTaxRate != 2.5 {
		t.Errorf("TransferTaxRate = %v, explicit value must survive", conf.Deal.TransferTaxRate)
	}
	if conf.Deal.InspectionCost != 999 {
		t.Errorf("InspectionCost = %v, explicit value must survive", conf.Deal.InspectionCost)
	}
	// Unset fields still fill from the tables.
	if conf.Deal.CPLFee != 100 {
		t.Errorf("CPLFee = %v, expected 100", conf.Deal.CPLFee)
	}
	if conf.Deal.TitleInsuranceRate != 0.55 {
		t.Errorf("TitleInsuranceRate = %v, expected 0.55", conf.Deal.TitleInsuranceRate)
	}
}
