package pricing

import (
	"errors"

	"linguaquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPageCount     = errors.New("page_count must be at least 1")
	ErrInvalidWordCount     = errors.New("word_count must not be negative")
	ErrMultiplierOutOfRange = errors.New("complexity multiplier out of range")
	ErrInvalidOverride      = errors.New("override must be positive")
)

var (
	rateIncrement = decimal.RequireFromString("2.5")
	tenths        = decimal.NewFromInt(10)
	minPages      = decimal.RequireFromString("0.1")
)

// RoundRate rounds a per-page rate up to the nearest $2.50 increment. This is
// a business rule, not a display artifact: it applies to the automated rate
// before any override check, and to rate overrides at entry.
func RoundRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(rateIncrement).Ceil().Mul(rateIncrement)
}

// RoundPages rounds billable pages up to one decimal, with a 0.1 floor.
func RoundPages(pages decimal.Decimal) decimal.Decimal {
	rounded := pages.Mul(tenths).Ceil().Div(tenths)
	if rounded.LessThan(minPages) {
		return minPages
	}
	return rounded
}

// LineInput carries one document's measured or confirmed attributes.
type LineInput struct {
	WordCount  int
	PageCount  int
	Complexity entities.ComplexityTier
	// ComplexityMultiplier, when positive, replaces the schedule value for the
	// tier (a staff multiplier correction). Bounded to [1.0, 3.0] either way.
	ComplexityMultiplier decimal.Decimal
	Certification        entities.CertificationType
	TargetLanguage       string

	BillablePagesOverride *decimal.Decimal
	PerPageRateOverride   *decimal.Decimal
}

// LineResult is the priced breakdown for one document. Auto values are always
// populated so an override never hides what the automated path computed.
type LineResult struct {
	ComplexityMultiplier decimal.Decimal
	AutoBillablePages    decimal.Decimal
	BillablePages        decimal.Decimal
	AutoPerPageRate      decimal.Decimal
	PerPageRate          decimal.Decimal
	CertificationFee     decimal.Decimal
	LineTotal            decimal.Decimal
}

// PriceLine turns one document's attributes into a line total:
//
//	per_page_rate  = ceil((base_rate * language_multiplier) / 2.50) * 2.50
//	billable_pages = ceil(word_count / words_per_page * multiplier * 10) / 10   (word count wins)
//	               = ceil(page_count * multiplier * 10) / 10                    (fallback)
//	line_total     = billable_pages * per_page_rate + certification_fee
//
// Input is validated before any math runs; the result is never negative and
// billable pages never drop below 0.1.
func PriceLine(cfg RateConfig, in LineInput) (LineResult, error) {
	if in.PageCount < 1 {
		return LineResult{}, ErrInvalidPageCount
	}
	if in.WordCount < 0 {
		return LineResult{}, ErrInvalidWordCount
	}
	if !in.Complexity.Valid() {
		return LineResult{}, ErrUnknownComplexity
	}

	multiplier := in.ComplexityMultiplier
	if multiplier.IsZero() {
		scheduled, err := cfg.ComplexityMultiplier(in.Complexity)
		if err != nil {
			return LineResult{}, err
		}
		multiplier = scheduled
	}
	if multiplier.LessThan(MinComplexityMultiplier) || multiplier.GreaterThan(MaxComplexityMultiplier) {
		return LineResult{}, ErrMultiplierOutOfRange
	}

	certFee, err := cfg.CertificationFee(in.Certification)
	if err != nil {
		return LineResult{}, err
	}

	autoRate := RoundRate(cfg.BaseRate.Mul(cfg.LanguageMultiplier(in.TargetLanguage)))

	var autoPages decimal.Decimal
	if in.WordCount > 0 {
		autoPages = RoundPages(decimal.NewFromInt(int64(in.WordCount)).
			Div(decimal.NewFromInt(int64(cfg.WordsPerPage))).
			Mul(multiplier))
	} else {
		autoPages = RoundPages(decimal.NewFromInt(int64(in.PageCount)).Mul(multiplier))
	}

	res := LineResult{
		ComplexityMultiplier: multiplier,
		AutoBillablePages:    autoPages,
		BillablePages:        autoPages,
		AutoPerPageRate:      autoRate,
		PerPageRate:          autoRate,
		CertificationFee:     certFee,
	}

	// Overrides fully replace the automated value downstream; they are
	// normalized with the same rounding rules at entry.
	if in.BillablePagesOverride != nil {
		if !in.BillablePagesOverride.IsPositive() {
			return LineResult{}, ErrInvalidOverride
		}
		res.BillablePages = RoundPages(*in.BillablePagesOverride)
	}
	if in.PerPageRateOverride != nil {
		if !in.PerPageRateOverride.IsPositive() {
			return LineResult{}, ErrInvalidOverride
		}
		res.PerPageRate = RoundRate(*in.PerPageRateOverride)
	}

	res.LineTotal = res.BillablePages.Mul(res.PerPageRate).Add(certFee)
	return res, nil
}
