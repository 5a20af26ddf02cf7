package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "linguaquote/internal/adapter/http/dto/request"
	response "linguaquote/internal/adapter/http/dto/response"
	"linguaquote/internal/domain/entities"
	"linguaquote/internal/domain/pricing"
	"linguaquote/internal/usecase"
	"linguaquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote starts a new quote in draft.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteCommand{
		CustomerRef:    payload.CustomerRef,
		SourceLanguage: payload.SourceLanguage,
		TargetLanguage: payload.TargetLanguage,
		TaxRegion:      payload.TaxRegion,
		Turnaround:     payload.Turnaround,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// AttachDocument registers one uploaded file on a quote.
func (h *QuoteHandler) AttachDocument(c *gin.Context) {
	var payload request.AttachDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AttachDocument(c.Request.Context(), c.Param("id"), usecase.AttachDocumentCommand{
		FileName:      payload.FileName,
		PageCount:     payload.PageCount,
		WordCount:     payload.WordCount,
		Certification: entities.CertificationType(payload.Certification),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocumentLine(line))
}

// ApplyAnalysis ingests the analysis pipeline's result for one document.
func (h *QuoteHandler) ApplyAnalysis(c *gin.Context) {
	var payload request.AnalysisResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	detail, err := h.usecase.ApplyAnalysis(c.Request.Context(), c.Param("id"), c.Param("document_id"), usecase.AnalysisResultCommand{
		Failed:       payload.Failed,
		DetectedType: payload.DetectedType,
		WordCount:    payload.WordCount,
		PageCount:    payload.PageCount,
		Complexity:   entities.ComplexityTier(payload.Complexity),
		Confidence:   payload.Confidence,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

// RecomputeTotals updates order-level modifiers and retotals the quote.
func (h *QuoteHandler) RecomputeTotals(c *gin.Context) {
	var payload request.RecomputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, appErr := resolveRecompute(payload)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	detail, err := h.usecase.RecomputeTotals(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

// RequestReview opens a customer-requested manual review.
func (h *QuoteHandler) RequestReview(c *gin.Context) {
	review, err := h.usecase.RequestReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(review))
}

// FastQuote lets staff build a fully priced quote in one call.
func (h *QuoteHandler) FastQuote(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.FastQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	modifiers, mErr := resolveRecompute(payload.Modifiers)
	if mErr != nil {
		c.JSON(mErr.HTTPStatus, mErr.ToHTTPError())
		return
	}

	lines := make([]usecase.FastQuoteLine, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		pages, rate, err := l.ResolveOverrides()
		if err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
		lines = append(lines, usecase.FastQuoteLine{
			FileName:              l.FileName,
			PageCount:             l.PageCount,
			WordCount:             l.WordCount,
			Complexity:            entities.ComplexityTier(l.Complexity),
			Certification:         entities.CertificationType(l.Certification),
			BillablePagesOverride: pages,
			PerPageRateOverride:   rate,
		})
	}

	detail, err := h.usecase.FastQuote(c.Request.Context(), staffID, role, usecase.FastQuoteCommand{
		CreateQuoteCommand: usecase.CreateQuoteCommand{
			CustomerRef:    payload.CustomerRef,
			SourceLanguage: payload.SourceLanguage,
			TargetLanguage: payload.TargetLanguage,
			TaxRegion:      payload.TaxRegion,
			Turnaround:     payload.Turnaround,
		},
		Lines:     lines,
		Modifiers: modifiers,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteDetail(detail))
}

// Pay captures payment for a quote_ready quote.
func (h *QuoteHandler) Pay(c *gin.Context) {
	quoteID := c.Param("id")
	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[quote][handler] invalid payment payload quote_id=%s err=%v", quoteID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.Pay(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Printf("[quote][handler] payment failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Cancel tombstones a quote.
func (h *QuoteHandler) Cancel(c *gin.Context) {
	q, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetQuote returns a quote with its document lines.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

// GetQuoteByNumber resolves a quote by its human-facing number.
func (h *QuoteHandler) GetQuoteByNumber(c *gin.Context) {
	detail, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

func resolveRecompute(payload request.RecomputeRequest) (usecase.RecomputeCommand, *pkg.AppError) {
	deliveryFee, err := payload.ResolveDeliveryFee()
	if err != nil {
		return usecase.RecomputeCommand{}, errInvalidQuotePayload
	}
	discount, err := payload.Discount.Resolve()
	if err != nil {
		return usecase.RecomputeCommand{}, errInvalidQuotePayload
	}
	surcharge, err := payload.Surcharge.Resolve()
	if err != nil {
		return usecase.RecomputeCommand{}, errInvalidQuotePayload
	}
	return usecase.RecomputeCommand{
		Turnaround:  payload.Turnaround,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Surcharge:   surcharge,
	}, nil
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return raw, nil
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, pricing.ErrUnknownTurnaround), errors.Is(err, pricing.ErrUnknownComplexity),
		errors.Is(err, pricing.ErrUnknownCertification):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote expired", http.StatusGone)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the quote's current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleRecompute):
		return pkg.NewDomainErrorSimple("STALE_RECOMPUTE", "Quote changed concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPriced):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PRICED", "Quote has unpriced document lines", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientRole):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_ROLE", "Staff role does not permit this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
