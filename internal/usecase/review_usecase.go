package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"linguaquote/internal/domain/entities"
	"linguaquote/internal/domain/pricing"
	"linguaquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidReviewID = errors.New("invalid review id")

	// ErrAlreadyClaimed is the claim race lost: another staff member holds
	// the review. The caller may retry or view read-only.
	ErrAlreadyClaimed = errors.New("review already claimed")
	// ErrNotClaimant rejects corrections/dispositions from anyone but the
	// current claimant; reviews are never silently reassigned.
	ErrNotClaimant = errors.New("staff member does not hold the claim")

	ErrNoOpCorrection          = errors.New("corrected value equals the original")
	ErrUnknownCorrectionField  = errors.New("unknown correction field")
	ErrRejectionReasonRequired = errors.New("rejection requires a reason")
	ErrEscalationNotConfirmed  = errors.New("escalation requires confirmation")
)

// CorrectionCommand is one manual override submitted under a claim.
type CorrectionCommand struct {
	DocumentLineID string
	Field          entities.CorrectionField
	CorrectedValue string
}

// CorrectionResult returns the ledger entry plus the repriced line and quote
// written in the same transaction.
type CorrectionResult struct {
	Correction entities.Correction
	Line       entities.DocumentLine
	Quote      entities.Quote
}

// ReviewDetail is a review with its correction trail.
type ReviewDetail struct {
	Review      entities.ReviewRecord
	Corrections []entities.Correction
}

// IReviewUseCase exposes the human-review workflow: exclusive claim
// ownership, audited corrections, and terminal dispositions.
type IReviewUseCase interface {
	GetByID(ctx context.Context, reviewID string) (ReviewDetail, error)
	Claim(ctx context.Context, reviewID, staffID string, role entities.StaffRole) (entities.ReviewRecord, error)
	Release(ctx context.Context, reviewID, staffID string, role entities.StaffRole) (entities.ReviewRecord, error)
	ForceRelease(ctx context.Context, reviewID string, role entities.StaffRole) (entities.ReviewRecord, error)
	SubmitCorrection(ctx context.Context, reviewID, staffID string, role entities.StaffRole, cmd CorrectionCommand) (CorrectionResult, error)
	Approve(ctx context.Context, reviewID, staffID string, role entities.StaffRole, notes string) (entities.ReviewRecord, error)
	Reject(ctx context.Context, reviewID, staffID string, role entities.StaffRole, reason string, documentIDs []string) (entities.ReviewRecord, error)
	Escalate(ctx context.Context, reviewID, staffID string, role entities.StaffRole, confirmed bool) (entities.ReviewRecord, error)
}

type ReviewUseCase struct {
	reviews     interfaces.IReviewRepository
	quotes      interfaces.IQuoteRepository
	lines       interfaces.IDocumentLineRepository
	corrections interfaces.ICorrectionRepository
	rates       interfaces.IRateConfigRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(
	reviews interfaces.IReviewRepository,
	quotes interfaces.IQuoteRepository,
	lines interfaces.IDocumentLineRepository,
	corrections interfaces.ICorrectionRepository,
	rates interfaces.IRateConfigRepository,
) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, quotes: quotes, lines: lines, corrections: corrections, rates: rates}
}

func (u *ReviewUseCase) GetByID(ctx context.Context, reviewID string) (ReviewDetail, error) {
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return ReviewDetail{}, err
	}
	trail, err := u.corrections.ListByQuoteID(ctx, r.QuoteID)
	if err != nil {
		return ReviewDetail{}, err
	}
	return ReviewDetail{Review: r, Corrections: trail}, nil
}

func (u *ReviewUseCase) Claim(ctx context.Context, reviewID, staffID string, role entities.StaffRole) (entities.ReviewRecord, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return entities.ReviewRecord{}, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if r.Status.Terminal() {
		return entities.ReviewRecord{}, ErrInvalidTransition
	}
	if !role.AtLeast(r.RequiredClaimRole) {
		return entities.ReviewRecord{}, ErrInsufficientRole
	}

	claimed, err := u.reviews.Claim(ctx, r.ID, staffID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if claimed.ID == "" {
		log.Printf("[review][usecase] claim lost review_id=%s staff_id=%s", r.ID, staffID)
		return entities.ReviewRecord{}, ErrAlreadyClaimed
	}
	log.Printf("[review][usecase] claimed review_id=%s staff_id=%s", r.ID, staffID)
	return claimed, nil
}

func (u *ReviewUseCase) Release(ctx context.Context, reviewID, staffID string, role entities.StaffRole) (entities.ReviewRecord, error) {
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if r.Status != entities.ReviewStatusInReview {
		return entities.ReviewRecord{}, ErrInvalidTransition
	}
	if !r.ClaimedBy(staffID) && !role.AtLeast(entities.RoleSuperAdmin) {
		return entities.ReviewRecord{}, ErrNotClaimant
	}

	released, err := u.reviews.Release(ctx, r.ID, r.AssignedTo)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if released.ID == "" {
		return entities.ReviewRecord{}, ErrAlreadyClaimed
	}
	log.Printf("[review][usecase] released review_id=%s staff_id=%s", r.ID, staffID)
	return released, nil
}

// ForceRelease backs the surrounding idle-claim reclamation policy; the core
// itself attaches no expiry to a claim.
func (u *ReviewUseCase) ForceRelease(ctx context.Context, reviewID string, role entities.StaffRole) (entities.ReviewRecord, error) {
	if !role.AtLeast(entities.RoleAdmin) {
		return entities.ReviewRecord{}, ErrInsufficientRole
	}
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if r.Status != entities.ReviewStatusInReview {
		return entities.ReviewRecord{}, ErrInvalidTransition
	}

	released, err := u.reviews.ForceRelease(ctx, r.ID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if released.ID == "" {
		return entities.ReviewRecord{}, ErrInvalidTransition
	}
	log.Printf("[review][usecase] force released review_id=%s previous_claimant=%s", r.ID, r.AssignedTo)
	return released, nil
}

func (u *ReviewUseCase) SubmitCorrection(ctx context.Context, reviewID, staffID string, role entities.StaffRole, cmd CorrectionCommand) (CorrectionResult, error) {
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return CorrectionResult{}, err
	}
	if r.Status != entities.ReviewStatusInReview {
		return CorrectionResult{}, ErrInvalidTransition
	}
	if !r.ClaimedBy(staffID) && !role.AtLeast(entities.RoleSuperAdmin) {
		return CorrectionResult{}, ErrNotClaimant
	}
	if !cmd.Field.Valid() {
		return CorrectionResult{}, ErrUnknownCorrectionField
	}

	q, err := u.quotes.GetByID(ctx, r.QuoteID)
	if err != nil {
		return CorrectionResult{}, err
	}
	if q.ID == "" {
		return CorrectionResult{}, ErrQuoteNotFound
	}
	if q.Status.Terminal() {
		return CorrectionResult{}, ErrInvalidTransition
	}

	line, err := u.lines.GetByID(ctx, strings.TrimSpace(cmd.DocumentLineID))
	if err != nil {
		return CorrectionResult{}, err
	}
	if line.ID == "" || line.QuoteID != q.ID {
		return CorrectionResult{}, ErrDocumentNotFound
	}

	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return CorrectionResult{}, err
	}

	original := originalValue(line, cmd.Field)
	corrected, err := applyCorrection(cfg, &line, cmd.Field, cmd.CorrectedValue, q.TargetLanguage)
	if err != nil {
		return CorrectionResult{}, err
	}
	if corrected == original {
		return CorrectionResult{}, ErrNoOpCorrection
	}

	// The ledger entry, the repriced line and the quote's new totals land in
	// one conditional transaction keyed on the version this read observed.
	if err := repriceLine(cfg, &line, q.TargetLanguage); err != nil {
		return CorrectionResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	now := time.Now().UTC()
	line.UpdatedAt = now

	lines, err := u.lines.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return CorrectionResult{}, err
	}
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		if l.ID == line.ID {
			lineTotals = append(lineTotals, line.LineTotal)
			continue
		}
		lineTotals = append(lineTotals, l.LineTotal)
	}
	totals, err := pricing.AggregateTotals(cfg, pricing.TotalsInput{
		LineTotals:  lineTotals,
		Turnaround:  q.Turnaround,
		DeliveryFee: q.DeliveryFee,
		Discount:    q.Discount,
		Surcharge:   q.Surcharge,
		TaxRate:     q.TaxRate,
	})
	if err != nil {
		return CorrectionResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	expectedVersion := q.Version
	q.Subtotal = totals.Subtotal
	q.TaxAmount = totals.TaxAmount
	q.Total = totals.Total
	q.UpdatedAt = now

	c := entities.Correction{
		ID:             uuid.NewString(),
		QuoteID:        q.ID,
		DocumentLineID: line.ID,
		Field:          cmd.Field,
		OriginalValue:  original,
		CorrectedValue: corrected,
		Actor:          staffID,
		CreatedAt:      now,
	}
	written, err := u.corrections.AppendWithRecompute(ctx, c, line, q, expectedVersion)
	if err != nil {
		return CorrectionResult{}, err
	}
	if written.ID == "" {
		return CorrectionResult{}, ErrStaleRecompute
	}
	log.Printf("[review][usecase] correction applied review_id=%s document_id=%s field=%s %s -> %s actor=%s",
		r.ID, line.ID, c.Field, c.OriginalValue, c.CorrectedValue, staffID)

	saved, err := u.quotes.GetByID(ctx, q.ID)
	if err != nil {
		return CorrectionResult{}, err
	}
	return CorrectionResult{Correction: written, Line: line, Quote: saved}, nil
}

func (u *ReviewUseCase) Approve(ctx context.Context, reviewID, staffID string, role entities.StaffRole, notes string) (entities.ReviewRecord, error) {
	r, err := u.claimantReview(ctx, reviewID, staffID, role)
	if err != nil {
		return entities.ReviewRecord{}, err
	}

	// Approval makes the quote payable, so partial pricing is rejected here.
	lines, err := u.lines.ListByQuoteID(ctx, r.QuoteID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if len(lines) == 0 {
		return entities.ReviewRecord{}, ErrQuoteNotPriced
	}
	for _, l := range lines {
		if !l.Priced() {
			return entities.ReviewRecord{}, ErrQuoteNotPriced
		}
	}

	resolved := r
	resolved.Status = entities.ReviewStatusApproved
	resolved.ResolutionNotes = strings.TrimSpace(notes)
	resolved.AssignedTo = ""
	out, err := u.reviews.Resolve(ctx, resolved, r.AssignedTo)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if out.ID == "" {
		return entities.ReviewRecord{}, ErrAlreadyClaimed
	}

	q, err := u.quotes.UpdateStatus(ctx, r.QuoteID, entities.QuoteStatusReviewRequired, entities.QuoteStatusQuoteReady)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if q.ID == "" {
		log.Printf("[review][usecase] quote left review_required before approval landed quote_id=%s", r.QuoteID)
	}
	log.Printf("[review][usecase] approved review_id=%s quote_id=%s staff_id=%s", r.ID, r.QuoteID, staffID)
	return out, nil
}

func (u *ReviewUseCase) Reject(ctx context.Context, reviewID, staffID string, role entities.StaffRole, reason string, documentIDs []string) (entities.ReviewRecord, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.ReviewRecord{}, ErrRejectionReasonRequired
	}
	r, err := u.claimantReview(ctx, reviewID, staffID, role)
	if err != nil {
		return entities.ReviewRecord{}, err
	}

	// Rejection names the specific documents that triggered it, not just the
	// quote as a whole.
	lines, err := u.lines.ListByQuoteID(ctx, r.QuoteID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	known := make(map[string]bool, len(lines))
	for _, l := range lines {
		known[l.ID] = true
	}
	for _, id := range documentIDs {
		if !known[id] {
			return entities.ReviewRecord{}, fmt.Errorf("%w: unknown document %s", ErrInvalidInput, id)
		}
	}

	resolved := r
	resolved.Status = entities.ReviewStatusRejected
	resolved.ResolutionNotes = strings.TrimSpace(reason)
	resolved.RejectedDocumentIDs = documentIDs
	resolved.AssignedTo = ""
	out, err := u.reviews.Resolve(ctx, resolved, r.AssignedTo)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if out.ID == "" {
		return entities.ReviewRecord{}, ErrAlreadyClaimed
	}

	// Back to the customer for a better scan/resubmission.
	q, err := u.quotes.UpdateStatus(ctx, r.QuoteID, entities.QuoteStatusReviewRequired, entities.QuoteStatusDetailsPending)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if q.ID == "" {
		log.Printf("[review][usecase] quote left review_required before rejection landed quote_id=%s", r.QuoteID)
	}
	log.Printf("[review][usecase] rejected review_id=%s quote_id=%s staff_id=%s documents=%d", r.ID, r.QuoteID, staffID, len(documentIDs))
	return out, nil
}

func (u *ReviewUseCase) Escalate(ctx context.Context, reviewID, staffID string, role entities.StaffRole, confirmed bool) (entities.ReviewRecord, error) {
	if !confirmed {
		return entities.ReviewRecord{}, ErrEscalationNotConfirmed
	}
	r, err := u.claimantReview(ctx, reviewID, staffID, role)
	if err != nil {
		return entities.ReviewRecord{}, err
	}

	resolved := r
	resolved.Status = entities.ReviewStatusEscalated
	resolved.AssignedTo = ""
	out, err := u.reviews.Resolve(ctx, resolved, r.AssignedTo)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if out.ID == "" {
		return entities.ReviewRecord{}, ErrAlreadyClaimed
	}

	// Escalation hands the quote to the supervisory tier as a fresh pending
	// record any senior reviewer can claim.
	now := time.Now().UTC()
	next, err := u.reviews.Create(ctx, entities.ReviewRecord{
		ID:                uuid.NewString(),
		QuoteID:           r.QuoteID,
		Status:            entities.ReviewStatusPending,
		TriggerReasons:    append(append([]entities.TriggerReason{}, r.TriggerReasons...), entities.TriggerEscalated),
		RequiredClaimRole: entities.RoleSeniorReviewer,
		SLADeadline:       now.Add(reviewSLA()),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	log.Printf("[review][usecase] escalated review_id=%s next_review_id=%s quote_id=%s staff_id=%s", r.ID, next.ID, r.QuoteID, staffID)
	return next, nil
}

func (u *ReviewUseCase) review(ctx context.Context, reviewID string) (entities.ReviewRecord, error) {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return entities.ReviewRecord{}, ErrInvalidReviewID
	}
	r, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if r.ID == "" {
		return entities.ReviewRecord{}, ErrReviewNotFound
	}
	return r, nil
}

// claimantReview loads a review and enforces the disposition preconditions:
// the record is in_review and the caller holds the claim (super admins may
// override).
func (u *ReviewUseCase) claimantReview(ctx context.Context, reviewID, staffID string, role entities.StaffRole) (entities.ReviewRecord, error) {
	r, err := u.review(ctx, reviewID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if r.Status != entities.ReviewStatusInReview {
		return entities.ReviewRecord{}, ErrInvalidTransition
	}
	if !r.ClaimedBy(staffID) && !role.AtLeast(entities.RoleSuperAdmin) {
		return entities.ReviewRecord{}, ErrNotClaimant
	}
	return r, nil
}

// originalValue renders the line's current value for a correctable field in
// its canonical string form, as stored in the ledger.
func originalValue(line entities.DocumentLine, field entities.CorrectionField) string {
	switch field {
	case entities.CorrectionFieldDocumentType:
		if line.ConfirmedType != "" {
			return line.ConfirmedType
		}
		return line.DetectedType
	case entities.CorrectionFieldWordCount:
		return strconv.Itoa(line.WordCount)
	case entities.CorrectionFieldPageCount:
		return strconv.Itoa(line.PageCount)
	case entities.CorrectionFieldBillablePages:
		return line.EffectiveBillablePages().String()
	case entities.CorrectionFieldComplexity:
		return string(line.Complexity)
	case entities.CorrectionFieldComplexityMultiplier:
		return line.ComplexityMultiplier.String()
	case entities.CorrectionFieldPerPageRate:
		return line.EffectivePerPageRate().String()
	case entities.CorrectionFieldCertificationType:
		return string(line.Certification)
	}
	return ""
}

// applyCorrection parses and applies a corrected value onto the line,
// returning the canonical form actually applied (overrides are normalized
// with the same rounding rules as automated values).
func applyCorrection(cfg pricing.RateConfig, line *entities.DocumentLine, field entities.CorrectionField, raw, targetLanguage string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: corrected value is required", ErrInvalidInput)
	}

	switch field {
	case entities.CorrectionFieldDocumentType:
		line.ConfirmedType = raw
		return raw, nil

	case entities.CorrectionFieldWordCount:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return "", fmt.Errorf("%w: word_count must be a non-negative integer", ErrInvalidInput)
		}
		line.WordCount = v
		return strconv.Itoa(v), nil

	case entities.CorrectionFieldPageCount:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return "", fmt.Errorf("%w: page_count must be a positive integer", ErrInvalidInput)
		}
		line.PageCount = v
		return strconv.Itoa(v), nil

	case entities.CorrectionFieldBillablePages:
		d, err := decimal.NewFromString(raw)
		if err != nil || !d.IsPositive() {
			return "", fmt.Errorf("%w: billable_pages must be a positive number", ErrInvalidInput)
		}
		normalized := pricing.RoundPages(d)
		line.BillablePagesOverride = &normalized
		return normalized.String(), nil

	case entities.CorrectionFieldComplexity:
		tier := entities.ComplexityTier(raw)
		if !tier.Valid() {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, pricing.ErrUnknownComplexity)
		}
		line.Complexity = tier
		// A tier change re-resolves the multiplier from the schedule.
		line.ComplexityMultiplier = decimal.Zero
		return raw, nil

	case entities.CorrectionFieldComplexityMultiplier:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return "", fmt.Errorf("%w: complexity_multiplier must be a number", ErrInvalidInput)
		}
		if d.LessThan(pricing.MinComplexityMultiplier) || d.GreaterThan(pricing.MaxComplexityMultiplier) {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, pricing.ErrMultiplierOutOfRange)
		}
		line.ComplexityMultiplier = d
		return d.String(), nil

	case entities.CorrectionFieldPerPageRate:
		d, err := decimal.NewFromString(raw)
		if err != nil || !d.IsPositive() {
			return "", fmt.Errorf("%w: per_page_rate must be a positive number", ErrInvalidInput)
		}
		normalized := pricing.RoundRate(d)
		line.PerPageRateOverride = &normalized
		return normalized.String(), nil

	case entities.CorrectionFieldCertificationType:
		ct := entities.CertificationType(raw)
		if _, err := cfg.CertificationFee(ct); err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		line.Certification = ct
		return raw, nil
	}
	return "", ErrUnknownCorrectionField
}
