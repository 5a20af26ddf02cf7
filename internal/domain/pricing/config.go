package pricing

import (
	"errors"
	"fmt"
	"strings"

	"linguaquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownComplexity    = errors.New("unknown complexity tier")
	ErrUnknownCertification = errors.New("unknown certification type")
	ErrUnknownTurnaround    = errors.New("unknown turnaround option")
	ErrInvalidRateConfig    = errors.New("invalid rate config")
)

// Multipliers are configuration, but bounded to a sane range even under
// manual override.
var (
	MinComplexityMultiplier = decimal.NewFromInt(1)
	MaxComplexityMultiplier = decimal.NewFromInt(3)
)

const (
	TurnaroundStandard = "standard"
	TurnaroundRush     = "rush"

	DefaultWordsPerPage = 225
)

// TurnaroundOption is a delivery-speed tier and its fee schedule.
type TurnaroundOption struct {
	FeeType  entities.FeeType `json:"fee_type"`
	FeeValue decimal.Decimal  `json:"fee_value"`
}

// RateConfig is the static/semi-static reference data pricing runs against.
// Pure lookup, no logic beyond bounds validation.
type RateConfig struct {
	BaseRate              decimal.Decimal                                `json:"base_rate"`
	WordsPerPage          int                                            `json:"words_per_page"`
	LanguageMultipliers   map[string]decimal.Decimal                     `json:"language_multipliers"`
	ComplexityMultipliers map[entities.ComplexityTier]decimal.Decimal    `json:"complexity_multipliers"`
	CertificationFees     map[entities.CertificationType]decimal.Decimal `json:"certification_fees"`
	Turnarounds           map[string]TurnaroundOption                    `json:"turnarounds"`
	TaxRates              map[string]decimal.Decimal                     `json:"tax_rates"`
}

// DefaultRateConfig is the compiled-in medium-confidence schedule, used when
// the rates table carries no row.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		BaseRate:     decimal.NewFromInt(65),
		WordsPerPage: DefaultWordsPerPage,
		LanguageMultipliers: map[string]decimal.Decimal{
			"en": decimal.NewFromInt(1),
			"es": decimal.RequireFromString("1.1"),
			"fr": decimal.RequireFromString("1.2"),
			"de": decimal.RequireFromString("1.2"),
			"ja": decimal.RequireFromString("1.5"),
			"zh": decimal.RequireFromString("1.5"),
			"ar": decimal.RequireFromString("1.4"),
		},
		ComplexityMultipliers: map[entities.ComplexityTier]decimal.Decimal{
			entities.ComplexityStandard:      decimal.NewFromInt(1),
			entities.ComplexityComplex:       decimal.RequireFromString("1.15"),
			entities.ComplexityHighlyComplex: decimal.RequireFromString("1.25"),
		},
		CertificationFees: map[entities.CertificationType]decimal.Decimal{
			entities.CertificationNone:      decimal.Zero,
			entities.CertificationStandard:  decimal.NewFromInt(50),
			entities.CertificationSworn:     decimal.NewFromInt(75),
			entities.CertificationNotarized: decimal.NewFromInt(95),
			entities.CertificationApostille: decimal.NewFromInt(120),
		},
		Turnarounds: map[string]TurnaroundOption{
			TurnaroundStandard: {},
			TurnaroundRush:     {FeeType: entities.FeeTypePercentage, FeeValue: decimal.NewFromInt(25)},
		},
		TaxRates: map[string]decimal.Decimal{
			"default": decimal.RequireFromString("0.05"),
		},
	}
}

// Validate rejects schedules that would produce nonsense prices: non-positive
// base rate or words-per-page, multipliers outside [1.0, 3.0], negative fees
// or tax rates.
func (c RateConfig) Validate() error {
	if !c.BaseRate.IsPositive() {
		return fmt.Errorf("%w: base_rate must be positive", ErrInvalidRateConfig)
	}
	if c.WordsPerPage <= 0 {
		return fmt.Errorf("%w: words_per_page must be positive", ErrInvalidRateConfig)
	}
	for lang, m := range c.LanguageMultipliers {
		if !m.IsPositive() {
			return fmt.Errorf("%w: language multiplier %q must be positive", ErrInvalidRateConfig, lang)
		}
	}
	for tier, m := range c.ComplexityMultipliers {
		if !tier.Valid() {
			return fmt.Errorf("%w: complexity tier %q", ErrInvalidRateConfig, tier)
		}
		if m.LessThan(MinComplexityMultiplier) || m.GreaterThan(MaxComplexityMultiplier) {
			return fmt.Errorf("%w: complexity multiplier for %q out of range", ErrInvalidRateConfig, tier)
		}
	}
	for ct, fee := range c.CertificationFees {
		if fee.IsNegative() {
			return fmt.Errorf("%w: certification fee for %q is negative", ErrInvalidRateConfig, ct)
		}
	}
	for name, opt := range c.Turnarounds {
		if opt.FeeValue.IsZero() {
			continue
		}
		if !opt.FeeType.Valid() {
			return fmt.Errorf("%w: turnaround %q fee_type %q", ErrInvalidRateConfig, name, opt.FeeType)
		}
		if opt.FeeValue.IsNegative() {
			return fmt.Errorf("%w: turnaround %q fee_value is negative", ErrInvalidRateConfig, name)
		}
	}
	for region, rate := range c.TaxRates {
		if rate.IsNegative() {
			return fmt.Errorf("%w: tax rate for %q is negative", ErrInvalidRateConfig, region)
		}
	}
	return nil
}

// LanguageMultiplier resolves the multiplier for a target language, falling
// back to 1.0 for languages without a configured premium.
func (c RateConfig) LanguageMultiplier(lang string) decimal.Decimal {
	if m, ok := c.LanguageMultipliers[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

func (c RateConfig) ComplexityMultiplier(tier entities.ComplexityTier) (decimal.Decimal, error) {
	m, ok := c.ComplexityMultipliers[tier]
	if !ok {
		return decimal.Zero, ErrUnknownComplexity
	}
	return m, nil
}

func (c RateConfig) CertificationFee(ct entities.CertificationType) (decimal.Decimal, error) {
	if ct == "" {
		return decimal.Zero, nil
	}
	fee, ok := c.CertificationFees[ct]
	if !ok {
		return decimal.Zero, ErrUnknownCertification
	}
	return fee, nil
}

func (c RateConfig) Turnaround(name string) (TurnaroundOption, error) {
	if name == "" {
		name = TurnaroundStandard
	}
	opt, ok := c.Turnarounds[name]
	if !ok {
		return TurnaroundOption{}, ErrUnknownTurnaround
	}
	return opt, nil
}

// TaxRate resolves the tax rate for a customer region, falling back to the
// "default" entry, then to zero.
func (c RateConfig) TaxRate(region string) decimal.Decimal {
	if rate, ok := c.TaxRates[strings.ToLower(strings.TrimSpace(region))]; ok {
		return rate
	}
	if rate, ok := c.TaxRates["default"]; ok {
		return rate
	}
	return decimal.Zero
}
