package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "linguaquote/internal/adapter/http/dto/request"
	response "linguaquote/internal/adapter/http/dto/response"
	"linguaquote/internal/domain/entities"
	"linguaquote/internal/usecase"
	"linguaquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
	errMissingStaffIdentity = pkg.NewDomainErrorSimple("MISSING_STAFF_IDENTITY", "X-Staff-ID and X-Staff-Role headers are required", http.StatusUnauthorized)
)

// ReviewHandler handles HTTP requests for the manual review workflow.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// staffIdentity resolves the acting staff member from request headers.
func staffIdentity(c *gin.Context) (string, entities.StaffRole, *pkg.AppError) {
	staffID := strings.TrimSpace(c.GetHeader("X-Staff-ID"))
	if staffID == "" {
		return "", "", errMissingStaffIdentity
	}
	role, err := entities.ParseStaffRole(c.GetHeader("X-Staff-Role"))
	if err != nil {
		return "", "", errMissingStaffIdentity
	}
	return staffID, role, nil
}

// GetReview returns a review with its correction history.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewDetail(detail))
}

// Claim assigns a pending review to the calling staff member.
func (h *ReviewHandler) Claim(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	review, err := h.usecase.Claim(c.Request.Context(), c.Param("id"), staffID, role)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// Release returns a claimed review to the pending pool.
func (h *ReviewHandler) Release(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	review, err := h.usecase.Release(c.Request.Context(), c.Param("id"), staffID, role)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// ForceRelease lets an admin take a stuck review away from its claimant.
func (h *ReviewHandler) ForceRelease(c *gin.Context) {
	_, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	review, err := h.usecase.ForceRelease(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// SubmitCorrection records one field correction and reprices the quote.
func (h *ReviewHandler) SubmitCorrection(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CorrectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SubmitCorrection(c.Request.Context(), c.Param("id"), staffID, role, usecase.CorrectionCommand{
		DocumentLineID: payload.DocumentID,
		Field:          entities.CorrectionField(payload.Field),
		CorrectedValue: payload.CorrectedValue,
	})
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCorrectionResult(result))
}

// Approve resolves a review as approved and readies the quote.
func (h *ReviewHandler) Approve(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ApproveReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), staffID, role, payload.Notes)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// Reject resolves a review as rejected and sends the quote back for new details.
func (h *ReviewHandler) Reject(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RejectReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), staffID, role, payload.Reason, payload.DocumentIDs)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// Escalate hands a review off to a senior reviewer.
func (h *ReviewHandler) Escalate(c *gin.Context) {
	staffID, role, appErr := staffIdentity(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.EscalateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Escalate(c.Request.Context(), c.Param("id"), staffID, role, payload.Confirm)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewID), errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrUnknownCorrectionField), errors.Is(err, usecase.ErrRejectionReasonRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyClaimed):
		return pkg.NewDomainErrorSimple("ALREADY_CLAIMED", "Review is already claimed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotClaimant):
		return pkg.NewDomainErrorSimple("NOT_CLAIMANT", "Review is claimed by another staff member", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInsufficientRole):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_ROLE", "Staff role does not permit this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoOpCorrection):
		return pkg.NewDomainErrorSimple("NO_OP_CORRECTION", "Corrected value equals the current value", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEscalationNotConfirmed):
		return pkg.NewDomainErrorSimple("ESCALATION_NOT_CONFIRMED", "Escalation requires explicit confirmation", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the review's current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleRecompute):
		return pkg.NewDomainErrorSimple("STALE_RECOMPUTE", "Quote changed concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPriced):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PRICED", "Quote has unpriced document lines", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
