package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
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
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrDocumentNotFound = errors.New("document line not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrInvalidTransition rejects lifecycle or disposition moves from a
	// state that does not permit them.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrQuoteExpired marks time-expired quotes: they cannot be priced or
	// paid without being recreated.
	ErrQuoteExpired = errors.New("quote expired")
	// ErrStaleRecompute means the line data changed underneath a recompute;
	// the caller must refetch and retry.
	ErrStaleRecompute = errors.New("stale recompute, quote changed concurrently")
	// ErrQuoteNotPriced blocks quote_ready while any line lacks billable
	// pages or a per-page rate.
	ErrQuoteNotPriced = errors.New("quote has unpriced document lines")
	// ErrInsufficientRole rejects staff operations below the required
	// capability tier.
	ErrInsufficientRole = errors.New("insufficient staff role")

	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
	ErrPaymentDeclined           = errors.New("payment declined by provider")
)

// CreateQuoteCommand starts a new quote.
type CreateQuoteCommand struct {
	CustomerRef    string
	SourceLanguage string
	TargetLanguage string
	TaxRegion      string
	Turnaround     string
}

// AttachDocumentCommand adds one uploaded file to a quote.
type AttachDocumentCommand struct {
	FileName      string
	PageCount     int
	WordCount     int
	Certification entities.CertificationType
}

// AnalysisResultCommand carries the external AI/OCR collaborator's output for
// one document. Analysis is a data source; it is validated at this boundary
// like any other input.
type AnalysisResultCommand struct {
	Failed       bool
	DetectedType string
	WordCount    int
	PageCount    int
	Complexity   entities.ComplexityTier
	Confidence   float64
}

// RecomputeCommand updates the order-level modifiers and recomputes totals.
type RecomputeCommand struct {
	Turnaround  string
	DeliveryFee decimal.Decimal
	Discount    entities.QuoteModifier
	Surcharge   entities.QuoteModifier
}

// FastQuoteLine is one staff-entered line of a manually built quote.
type FastQuoteLine struct {
	FileName              string
	PageCount             int
	WordCount             int
	Complexity            entities.ComplexityTier
	Certification         entities.CertificationType
	BillablePagesOverride *decimal.Decimal
	PerPageRateOverride   *decimal.Decimal
}

// FastQuoteCommand lets staff build a fully priced quote in one call.
type FastQuoteCommand struct {
	CreateQuoteCommand
	Lines     []FastQuoteLine
	Modifiers RecomputeCommand
}

// QuoteDetail is a quote with its document lines.
type QuoteDetail struct {
	Quote entities.Quote
	Lines []entities.DocumentLine
}

// IQuoteUseCase exposes the quote lifecycle operations.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	AttachDocument(ctx context.Context, quoteID string, cmd AttachDocumentCommand) (entities.DocumentLine, error)
	ApplyAnalysis(ctx context.Context, quoteID, documentID string, cmd AnalysisResultCommand) (QuoteDetail, error)
	RecomputeTotals(ctx context.Context, quoteID string, cmd RecomputeCommand) (QuoteDetail, error)
	RequestReview(ctx context.Context, quoteID string) (entities.ReviewRecord, error)
	FastQuote(ctx context.Context, staffID string, role entities.StaffRole, cmd FastQuoteCommand) (QuoteDetail, error)
	Pay(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.Quote, error)
	Cancel(ctx context.Context, quoteID string) (entities.Quote, error)
	GetByID(ctx context.Context, quoteID string) (QuoteDetail, error)
	GetByNumber(ctx context.Context, quoteNumber string) (QuoteDetail, error)
}

type QuoteUseCase struct {
	quotes  interfaces.IQuoteRepository
	lines   interfaces.IDocumentLineRepository
	reviews interfaces.IReviewRepository
	rates   interfaces.IRateConfigRepository

	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	lines interfaces.IDocumentLineRepository,
	reviews interfaces.IReviewRepository,
	rates interfaces.IRateConfigRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, lines: lines, reviews: reviews, rates: rates, payments: payments, gateway: gateway}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	if strings.TrimSpace(cmd.CustomerRef) == "" {
		return entities.Quote{}, fmt.Errorf("%w: customer_ref is required", ErrInvalidInput)
	}
	if strings.TrimSpace(cmd.TargetLanguage) == "" {
		return entities.Quote{}, fmt.Errorf("%w: target_language is required", ErrInvalidInput)
	}

	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	turnaround := cmd.Turnaround
	if turnaround == "" {
		turnaround = pricing.TurnaroundStandard
	}
	if _, err := cfg.Turnaround(turnaround); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               uuid.NewString(),
		QuoteNumber:      newQuoteNumber(now),
		Status:           entities.QuoteStatusDraft,
		ProcessingStatus: entities.ProcessingStatusPending,
		CustomerRef:      strings.TrimSpace(cmd.CustomerRef),
		SourceLanguage:   strings.ToLower(strings.TrimSpace(cmd.SourceLanguage)),
		TargetLanguage:   strings.ToLower(strings.TrimSpace(cmd.TargetLanguage)),
		TaxRegion:        strings.ToLower(strings.TrimSpace(cmd.TaxRegion)),
		Turnaround:       turnaround,
		TaxRate:          cfg.TaxRate(cmd.TaxRegion),
		ExpiresAt:        now.Add(quoteTTL()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	log.Printf("[quote][usecase] create quote_id=%s quote_number=%s customer_ref=%s", q.ID, q.QuoteNumber, q.CustomerRef)
	return u.quotes.Create(ctx, q)
}

func (u *QuoteUseCase) AttachDocument(ctx context.Context, quoteID string, cmd AttachDocumentCommand) (entities.DocumentLine, error) {
	q, err := u.activeQuote(ctx, quoteID)
	if err != nil {
		return entities.DocumentLine{}, err
	}
	if strings.TrimSpace(cmd.FileName) == "" {
		return entities.DocumentLine{}, fmt.Errorf("%w: file_name is required", ErrInvalidInput)
	}
	if cmd.PageCount < 1 {
		return entities.DocumentLine{}, fmt.Errorf("%w: page_count must be at least 1", ErrInvalidInput)
	}
	if cmd.WordCount < 0 {
		return entities.DocumentLine{}, fmt.Errorf("%w: word_count must not be negative", ErrInvalidInput)
	}
	cert := cmd.Certification
	if cert == "" {
		cert = entities.CertificationNone
	}
	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return entities.DocumentLine{}, err
	}
	if _, err := cfg.CertificationFee(cert); err != nil {
		return entities.DocumentLine{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	l := entities.DocumentLine{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		FileName:      strings.TrimSpace(cmd.FileName),
		WordCount:     cmd.WordCount,
		PageCount:     cmd.PageCount,
		Complexity:    entities.ComplexityStandard,
		Certification: cert,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.lines.Create(ctx, l)
	if err != nil {
		return entities.DocumentLine{}, err
	}

	// First upload moves the quote out of draft.
	if q.Status == entities.QuoteStatusDraft {
		if _, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusDraft, entities.QuoteStatusDetailsPending); err != nil {
			return entities.DocumentLine{}, err
		}
	}
	log.Printf("[quote][usecase] document attached quote_id=%s document_id=%s file=%s", q.ID, created.ID, created.FileName)
	return created, nil
}

func (u *QuoteUseCase) ApplyAnalysis(ctx context.Context, quoteID, documentID string, cmd AnalysisResultCommand) (QuoteDetail, error) {
	q, err := u.activeQuote(ctx, quoteID)
	if err != nil {
		return QuoteDetail{}, err
	}
	line, err := u.quoteLine(ctx, q.ID, documentID)
	if err != nil {
		return QuoteDetail{}, err
	}

	now := time.Now().UTC()

	if cmd.Failed {
		log.Printf("[quote][usecase] analysis failed quote_id=%s document_id=%s", q.ID, line.ID)
		if _, err := u.ensureOpenReview(ctx, q, entities.TriggerAnalysisFailed); err != nil {
			return QuoteDetail{}, err
		}
		q.ProcessingStatus = entities.ProcessingStatusFailed
		q.UpdatedAt = now
		saved, err := u.quotes.SaveTotals(ctx, q, q.Version)
		if err != nil {
			return QuoteDetail{}, err
		}
		if saved.ID == "" {
			return QuoteDetail{}, ErrStaleRecompute
		}
		return u.detail(ctx, saved.ID)
	}

	if cmd.WordCount < 0 {
		return QuoteDetail{}, fmt.Errorf("%w: word_count must not be negative", ErrInvalidInput)
	}
	if cmd.Confidence < 0 || cmd.Confidence > 1 {
		return QuoteDetail{}, fmt.Errorf("%w: confidence must be within [0,1]", ErrInvalidInput)
	}

	line.DetectedType = strings.TrimSpace(cmd.DetectedType)
	line.Confidence = cmd.Confidence
	if cmd.WordCount > 0 {
		line.WordCount = cmd.WordCount
	}
	if cmd.PageCount > 0 {
		line.PageCount = cmd.PageCount
	}
	if cmd.Complexity != "" {
		line.Complexity = cmd.Complexity
	}

	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return QuoteDetail{}, err
	}
	if err := repriceLine(cfg, &line, q.TargetLanguage); err != nil {
		return QuoteDetail{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	line.UpdatedAt = now
	q.ProcessingStatus = entities.ProcessingStatusAnalyzed
	q, err = u.commitRepricedLine(ctx, cfg, q, line)
	if err != nil {
		return QuoteDetail{}, err
	}

	switch {
	case cmd.Confidence < confidenceThreshold():
		log.Printf("[quote][usecase] low confidence quote_id=%s document_id=%s confidence=%.2f", q.ID, line.ID, cmd.Confidence)
		if _, err := u.ensureOpenReview(ctx, q, entities.TriggerLowConfidence); err != nil {
			return QuoteDetail{}, err
		}
	case q.Total.GreaterThanOrEqual(highValueThreshold()):
		log.Printf("[quote][usecase] high value quote_id=%s total=%s", q.ID, q.Total)
		if _, err := u.ensureOpenReview(ctx, q, entities.TriggerHighValue); err != nil {
			return QuoteDetail{}, err
		}
	default:
		if err := u.markReadyIfPriced(ctx, q); err != nil {
			return QuoteDetail{}, err
		}
	}
	return u.detail(ctx, q.ID)
}

func (u *QuoteUseCase) RecomputeTotals(ctx context.Context, quoteID string, cmd RecomputeCommand) (QuoteDetail, error) {
	q, err := u.activeQuote(ctx, quoteID)
	if err != nil {
		return QuoteDetail{}, err
	}

	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return QuoteDetail{}, err
	}
	if cmd.Turnaround != "" {
		if _, err := cfg.Turnaround(cmd.Turnaround); err != nil {
			return QuoteDetail{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		q.Turnaround = cmd.Turnaround
	}
	q.DeliveryFee = cmd.DeliveryFee
	q.Discount = cmd.Discount
	q.Surcharge = cmd.Surcharge

	q, err = u.recomputeAndSave(ctx, cfg, q)
	if err != nil {
		return QuoteDetail{}, err
	}
	if err := u.markReadyIfPriced(ctx, q); err != nil {
		return QuoteDetail{}, err
	}
	return u.detail(ctx, q.ID)
}

func (u *QuoteUseCase) RequestReview(ctx context.Context, quoteID string) (entities.ReviewRecord, error) {
	q, err := u.activeQuote(ctx, quoteID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	log.Printf("[quote][usecase] customer review request quote_id=%s", q.ID)
	return u.ensureOpenReview(ctx, q, entities.TriggerCustomerRequested)
}

func (u *QuoteUseCase) FastQuote(ctx context.Context, staffID string, role entities.StaffRole, cmd FastQuoteCommand) (QuoteDetail, error) {
	if !role.AtLeast(entities.RoleAdmin) {
		return QuoteDetail{}, ErrInsufficientRole
	}
	if len(cmd.Lines) == 0 {
		return QuoteDetail{}, fmt.Errorf("%w: at least one document line is required", ErrInvalidInput)
	}

	q, err := u.CreateQuote(ctx, cmd.CreateQuoteCommand)
	if err != nil {
		return QuoteDetail{}, err
	}
	log.Printf("[quote][usecase] fast quote start quote_id=%s staff_id=%s lines=%d", q.ID, staffID, len(cmd.Lines))

	cfg, err := u.rates.Load(ctx)
	if err != nil {
		return QuoteDetail{}, err
	}

	now := time.Now().UTC()
	for _, fl := range cmd.Lines {
		line := entities.DocumentLine{
			ID:                    uuid.NewString(),
			QuoteID:               q.ID,
			FileName:              strings.TrimSpace(fl.FileName),
			WordCount:             fl.WordCount,
			PageCount:             fl.PageCount,
			Complexity:            fl.Complexity,
			Certification:         fl.Certification,
			BillablePagesOverride: fl.BillablePagesOverride,
			PerPageRateOverride:   fl.PerPageRateOverride,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if line.Complexity == "" {
			line.Complexity = entities.ComplexityStandard
		}
		if line.Certification == "" {
			line.Certification = entities.CertificationNone
		}
		if err := repriceLine(cfg, &line, q.TargetLanguage); err != nil {
			return QuoteDetail{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		if _, err := u.lines.Create(ctx, line); err != nil {
			return QuoteDetail{}, err
		}
	}

	if _, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusDraft, entities.QuoteStatusDetailsPending); err != nil {
		return QuoteDetail{}, err
	}
	q, err = u.quotes.GetByID(ctx, q.ID)
	if err != nil {
		return QuoteDetail{}, err
	}

	if cmd.Modifiers.Turnaround != "" {
		q.Turnaround = cmd.Modifiers.Turnaround
	}
	q.DeliveryFee = cmd.Modifiers.DeliveryFee
	q.Discount = cmd.Modifiers.Discount
	q.Surcharge = cmd.Modifiers.Surcharge
	q.ProcessingStatus = entities.ProcessingStatusAnalyzed

	q, err = u.recomputeAndSave(ctx, cfg, q)
	if err != nil {
		return QuoteDetail{}, err
	}
	if err := u.markReadyIfPriced(ctx, q); err != nil {
		return QuoteDetail{}, err
	}
	return u.detail(ctx, q.ID)
}

func (u *QuoteUseCase) Pay(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.Quote, error) {
	q, err := u.activeQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	// Payment cannot race ahead of a finished price: review approval already
	// moved an approved quote to quote_ready, every other state is rejected.
	if q.Status != entities.QuoteStatusQuoteReady {
		return entities.Quote{}, ErrInvalidTransition
	}
	if u.gateway == nil {
		return entities.Quote{}, ErrPaymentGatewayUnavailable
	}

	payload := map[string]any{}
	if len(providerPayload) > 0 {
		if !json.Valid(providerPayload) {
			return entities.Quote{}, fmt.Errorf("%w: provider payload is not valid JSON", ErrInvalidInput)
		}
		if err := json.Unmarshal(providerPayload, &payload); err != nil {
			return entities.Quote{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
	}
	// The source of truth for the amount is the quote in the store.
	payload["transaction_amount"], _ = q.Total.Round(2).Float64()
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = q.ID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Quote %s", q.QuoteNumber)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] payment start quote_id=%s amount=%s", q.ID, q.Total)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[quote][usecase] payment gateway failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[quote][usecase] payment declined quote_id=%s provider_status=%s", q.ID, providerStatus)
		return entities.Quote{}, ErrPaymentDeclined
	}

	if u.payments != nil {
		p := entities.Payment{
			ID:          providerID,
			QuoteID:     q.ID,
			Amount:      q.Total,
			Status:      entities.PaymentStatusApproved,
			ProviderRaw: providerResp,
			CreatedAt:   time.Now().UTC(),
		}
		if _, err := u.payments.Create(ctx, p); err != nil {
			return entities.Quote{}, err
		}
	}

	paid, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusQuoteReady, entities.QuoteStatusPaid)
	if err != nil {
		return entities.Quote{}, err
	}
	if paid.ID == "" {
		// The capture already landed at the provider. Flag it for
		// reconciliation instead of dropping it on the floor.
		log.Printf("[quote][usecase] payment captured but status update lost quote_id=%s payment_id=%s amount=%s",
			q.ID, providerID, q.Total)
		return entities.Quote{}, ErrInvalidTransition
	}
	log.Printf("[quote][usecase] payment success quote_id=%s payment_id=%s", q.ID, providerID)
	return paid, nil
}

func (u *QuoteUseCase) Cancel(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status.Terminal() {
		return entities.Quote{}, ErrInvalidTransition
	}

	cancelled, err := u.quotes.SoftDelete(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if cancelled.ID == "" {
		return entities.Quote{}, ErrInvalidTransition
	}
	log.Printf("[quote][usecase] cancelled quote_id=%s", q.ID)
	return cancelled, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, quoteID string) (QuoteDetail, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuoteDetail{}, ErrInvalidQuoteID
	}
	return u.detail(ctx, quoteID)
}

func (u *QuoteUseCase) GetByNumber(ctx context.Context, quoteNumber string) (QuoteDetail, error) {
	quoteNumber = strings.TrimSpace(quoteNumber)
	if quoteNumber == "" {
		return QuoteDetail{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return QuoteDetail{}, err
	}
	if q.ID == "" {
		return QuoteDetail{}, ErrQuoteNotFound
	}
	return u.detail(ctx, q.ID)
}

// activeQuote loads a quote and enforces the lazy expiry rule: a quote past
// its TTL is tombstoned as expired before the caller sees it.
func (u *QuoteUseCase) activeQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status.Terminal() {
		if q.Status == entities.QuoteStatusExpired {
			return entities.Quote{}, ErrQuoteExpired
		}
		return entities.Quote{}, ErrInvalidTransition
	}
	if q.Expired(time.Now().UTC()) {
		if _, err := u.quotes.UpdateStatus(ctx, q.ID, q.Status, entities.QuoteStatusExpired); err != nil {
			return entities.Quote{}, err
		}
		log.Printf("[quote][usecase] expired lazily quote_id=%s", q.ID)
		return entities.Quote{}, ErrQuoteExpired
	}
	return q, nil
}

func (u *QuoteUseCase) quoteLine(ctx context.Context, quoteID, documentID string) (entities.DocumentLine, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.DocumentLine{}, ErrDocumentNotFound
	}
	line, err := u.lines.GetByID(ctx, documentID)
	if err != nil {
		return entities.DocumentLine{}, err
	}
	if line.ID == "" || line.QuoteID != quoteID {
		return entities.DocumentLine{}, ErrDocumentNotFound
	}
	return line, nil
}

// recomputeAndSave aggregates the current lines into the quote's totals block
// and persists it conditionally on the version this recompute read.
func (u *QuoteUseCase) recomputeAndSave(ctx context.Context, cfg pricing.RateConfig, q entities.Quote) (entities.Quote, error) {
	lines, err := u.lines.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		lineTotals = append(lineTotals, l.LineTotal)
	}

	res, err := pricing.AggregateTotals(cfg, pricing.TotalsInput{
		LineTotals:  lineTotals,
		Turnaround:  q.Turnaround,
		DeliveryFee: q.DeliveryFee,
		Discount:    q.Discount,
		Surcharge:   q.Surcharge,
		TaxRate:     q.TaxRate,
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	q.Subtotal = res.Subtotal
	q.TaxAmount = res.TaxAmount
	q.Total = res.Total
	q.UpdatedAt = time.Now().UTC()

	saved, err := u.quotes.SaveTotals(ctx, q, q.Version)
	if err != nil {
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrStaleRecompute
	}
	log.Printf("[quote][usecase] totals recomputed quote_id=%s subtotal=%s tax=%s total=%s version=%d",
		saved.ID, saved.Subtotal, saved.TaxAmount, saved.Total, saved.Version)
	return saved, nil
}

// commitRepricedLine aggregates totals over the current lines with the
// repriced line substituted in, then writes the line and the totals block in
// one transaction. The line must never land without its totals.
func (u *QuoteUseCase) commitRepricedLine(ctx context.Context, cfg pricing.RateConfig, q entities.Quote, line entities.DocumentLine) (entities.Quote, error) {
	lines, err := u.lines.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		if l.ID == line.ID {
			l = line
		}
		lineTotals = append(lineTotals, l.LineTotal)
	}

	res, err := pricing.AggregateTotals(cfg, pricing.TotalsInput{
		LineTotals:  lineTotals,
		Turnaround:  q.Turnaround,
		DeliveryFee: q.DeliveryFee,
		Discount:    q.Discount,
		Surcharge:   q.Surcharge,
		TaxRate:     q.TaxRate,
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	q.Subtotal = res.Subtotal
	q.TaxAmount = res.TaxAmount
	q.Total = res.Total
	q.UpdatedAt = time.Now().UTC()

	saved, err := u.lines.UpdateWithTotals(ctx, line, q, q.Version)
	if err != nil {
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrStaleRecompute
	}

	fresh, err := u.quotes.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] line repriced quote_id=%s document_id=%s subtotal=%s tax=%s total=%s version=%d",
		fresh.ID, line.ID, fresh.Subtotal, fresh.TaxAmount, fresh.Total, fresh.Version)
	return fresh, nil
}

// markReadyIfPriced upgrades details_pending to quote_ready once every line
// carries effective billable pages and a per-page rate. Quotes under review
// stay review_required until disposition.
func (u *QuoteUseCase) markReadyIfPriced(ctx context.Context, q entities.Quote) error {
	if q.Status != entities.QuoteStatusDetailsPending {
		return nil
	}
	lines, err := u.lines.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for _, l := range lines {
		if !l.Priced() {
			return nil
		}
	}
	_, err = u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusDetailsPending, entities.QuoteStatusQuoteReady)
	return err
}

// ensureOpenReview creates the quote's review record or reuses the open one,
// and moves the quote into review_required.
func (u *QuoteUseCase) ensureOpenReview(ctx context.Context, q entities.Quote, reason entities.TriggerReason) (entities.ReviewRecord, error) {
	existing, err := u.reviews.GetOpenByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.ReviewRecord{}, err
	}

	r := existing
	if existing.ID == "" {
		now := time.Now().UTC()
		r, err = u.reviews.Create(ctx, entities.ReviewRecord{
			ID:                uuid.NewString(),
			QuoteID:           q.ID,
			Status:            entities.ReviewStatusPending,
			TriggerReasons:    []entities.TriggerReason{reason},
			RequiredClaimRole: entities.RoleReviewer,
			SLADeadline:       now.Add(reviewSLA()),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return entities.ReviewRecord{}, err
		}
		log.Printf("[quote][usecase] review opened quote_id=%s review_id=%s reason=%s", q.ID, r.ID, reason)
	}

	if q.Status != entities.QuoteStatusReviewRequired {
		if !q.Status.CanTransitionTo(entities.QuoteStatusReviewRequired) {
			return entities.ReviewRecord{}, ErrInvalidTransition
		}
		if _, err := u.quotes.UpdateStatus(ctx, q.ID, q.Status, entities.QuoteStatusReviewRequired); err != nil {
			return entities.ReviewRecord{}, err
		}
	}
	return r, nil
}

func (u *QuoteUseCase) detail(ctx context.Context, quoteID string) (QuoteDetail, error) {
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteDetail{}, err
	}
	if q.ID == "" {
		return QuoteDetail{}, ErrQuoteNotFound
	}
	lines, err := u.lines.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return QuoteDetail{}, err
	}
	return QuoteDetail{Quote: q, Lines: lines}, nil
}

// repriceLine runs the line pricer against a document line's current
// attributes and writes the result back onto it, keeping the automated values
// alongside any overrides.
func repriceLine(cfg pricing.RateConfig, line *entities.DocumentLine, targetLanguage string) error {
	res, err := pricing.PriceLine(cfg, pricing.LineInput{
		WordCount:             line.WordCount,
		PageCount:             line.PageCount,
		Complexity:            line.Complexity,
		ComplexityMultiplier:  line.ComplexityMultiplier,
		Certification:         line.Certification,
		TargetLanguage:        targetLanguage,
		BillablePagesOverride: line.BillablePagesOverride,
		PerPageRateOverride:   line.PerPageRateOverride,
	})
	if err != nil {
		return err
	}
	line.ComplexityMultiplier = res.ComplexityMultiplier
	line.AutoBillablePages = res.AutoBillablePages
	line.AutoPerPageRate = res.AutoPerPageRate
	if line.BillablePagesOverride != nil {
		normalized := res.BillablePages
		line.BillablePagesOverride = &normalized
	}
	if line.PerPageRateOverride != nil {
		normalized := res.PerPageRate
		line.PerPageRateOverride = &normalized
	}
	line.CertificationFee = res.CertificationFee
	line.LineTotal = res.LineTotal
	return nil
}

func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}

func quoteTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("QUOTE_TTL_HOURS")); err == nil && v > 0 {
		return time.Duration(v) * time.Hour
	}
	return 30 * 24 * time.Hour
}

func reviewSLA() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("REVIEW_SLA_HOURS")); err == nil && v > 0 {
		return time.Duration(v) * time.Hour
	}
	return 24 * time.Hour
}

func confidenceThreshold() float64 {
	if v, err := strconv.ParseFloat(os.Getenv("REVIEW_CONFIDENCE_THRESHOLD"), 64); err == nil && v > 0 && v <= 1 {
		return v
	}
	return 0.75
}

func highValueThreshold() decimal.Decimal {
	if v := strings.TrimSpace(os.Getenv("REVIEW_HIGH_VALUE_THRESHOLD")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromInt(5000)
}
