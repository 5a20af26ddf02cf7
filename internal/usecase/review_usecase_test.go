package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"linguaquote/internal/domain/entities"
	"linguaquote/internal/domain/pricing"
	mock_interfaces "linguaquote/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type reviewMocks struct {
	reviews     *mock_interfaces.MockIReviewRepository
	quotes      *mock_interfaces.MockIQuoteRepository
	lines       *mock_interfaces.MockIDocumentLineRepository
	corrections *mock_interfaces.MockICorrectionRepository
	rates       *mock_interfaces.MockIRateConfigRepository
}

func newReviewUseCaseWithMocks(t *testing.T) (*ReviewUseCase, reviewMocks) {
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		reviews:     mock_interfaces.NewMockIReviewRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		lines:       mock_interfaces.NewMockIDocumentLineRepository(ctrl),
		corrections: mock_interfaces.NewMockICorrectionRepository(ctrl),
		rates:       mock_interfaces.NewMockIRateConfigRepository(ctrl),
	}
	uc := NewReviewUseCase(m.reviews, m.quotes, m.lines, m.corrections, m.rates)
	return uc, m
}

func pendingTestReview() entities.ReviewRecord {
	return entities.ReviewRecord{
		ID:                "r-1",
		QuoteID:           "q-1",
		Status:            entities.ReviewStatusPending,
		TriggerReasons:    []entities.TriggerReason{entities.TriggerLowConfidence},
		RequiredClaimRole: entities.RoleReviewer,
		SLADeadline:       time.Now().UTC().Add(24 * time.Hour),
	}
}

func claimedTestReview(staffID string) entities.ReviewRecord {
	r := pendingTestReview()
	r.Status = entities.ReviewStatusInReview
	r.AssignedTo = staffID
	return r
}

func TestReviewUseCase_Claim(t *testing.T) {
	t.Run("missing staff id", func(t *testing.T) {
		uc, _ := newReviewUseCaseWithMocks(t)
		_, err := uc.Claim(context.Background(), "r-1", "  ", entities.RoleReviewer)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ReviewRecord{}, nil)

		_, err := uc.Claim(context.Background(), "r-1", "staff-1", entities.RoleReviewer)
		if !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})

	t.Run("terminal review", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		r := pendingTestReview()
		r.Status = entities.ReviewStatusApproved
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(r, nil)

		_, err := uc.Claim(context.Background(), "r-1", "staff-1", entities.RoleReviewer)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("escalated review needs a senior reviewer", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		r := pendingTestReview()
		r.RequiredClaimRole = entities.RoleSeniorReviewer
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(r, nil)

		_, err := uc.Claim(context.Background(), "r-1", "staff-1", entities.RoleReviewer)
		if !errors.Is(err, ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("race lost", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(pendingTestReview(), nil)
		m.reviews.EXPECT().Claim(gomock.Any(), "r-1", "staff-1").Return(entities.ReviewRecord{}, nil)

		_, err := uc.Claim(context.Background(), "r-1", "staff-1", entities.RoleReviewer)
		if !errors.Is(err, ErrAlreadyClaimed) {
			t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(pendingTestReview(), nil)
		m.reviews.EXPECT().Claim(gomock.Any(), "r-1", "staff-1").Return(claimedTestReview("staff-1"), nil)

		r, err := uc.Claim(context.Background(), "r-1", " staff-1 ", entities.RoleReviewer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.AssignedTo != "staff-1" || r.Status != entities.ReviewStatusInReview {
			t.Fatalf("unexpected review: %+v", r)
		}
	})
}

func TestReviewUseCase_Release(t *testing.T) {
	t.Run("not claimant", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)

		_, err := uc.Release(context.Background(), "r-1", "staff-2", entities.RoleReviewer)
		if !errors.Is(err, ErrNotClaimant) {
			t.Fatalf("expected ErrNotClaimant, got %v", err)
		}
	})

	t.Run("super admin may release on behalf", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.reviews.EXPECT().Release(gomock.Any(), "r-1", "staff-1").Return(pendingTestReview(), nil)

		r, err := uc.Release(context.Background(), "r-1", "root", entities.RoleSuperAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.ReviewStatusPending {
			t.Fatalf("expected pending, got %s", r.Status)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.reviews.EXPECT().Release(gomock.Any(), "r-1", "staff-1").Return(pendingTestReview(), nil)

		if _, err := uc.Release(context.Background(), "r-1", "staff-1", entities.RoleReviewer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReviewUseCase_ForceRelease(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		uc, _ := newReviewUseCaseWithMocks(t)
		_, err := uc.ForceRelease(context.Background(), "r-1", entities.RoleSeniorReviewer)
		if !errors.Is(err, ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.reviews.EXPECT().ForceRelease(gomock.Any(), "r-1").Return(pendingTestReview(), nil)

		r, err := uc.ForceRelease(context.Background(), "r-1", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.AssignedTo != "" {
			t.Fatalf("expected cleared claim, got %+v", r)
		}
	})
}

func TestReviewUseCase_SubmitCorrection(t *testing.T) {
	t.Run("not claimant", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)

		_, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-2", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: entities.CorrectionFieldWordCount, CorrectedValue: "1200",
		})
		if !errors.Is(err, ErrNotClaimant) {
			t.Fatalf("expected ErrNotClaimant, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)

		_, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-1", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: "color", CorrectedValue: "blue",
		})
		if !errors.Is(err, ErrUnknownCorrectionField) {
			t.Fatalf("expected ErrUnknownCorrectionField, got %v", err)
		}
	})

	t.Run("no-op correction", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(activeTestQuote(entities.QuoteStatusReviewRequired), nil)
		m.lines.EXPECT().GetByID(gomock.Any(), "d-1").Return(pricedTestLine(), nil)
		m.rates.EXPECT().Load(gomock.Any()).Return(pricing.DefaultRateConfig(), nil)

		_, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-1", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: entities.CorrectionFieldWordCount, CorrectedValue: "900",
		})
		if !errors.Is(err, ErrNoOpCorrection) {
			t.Fatalf("expected ErrNoOpCorrection, got %v", err)
		}
	})

	t.Run("word count correction reprices transactionally", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		q := activeTestQuote(entities.QuoteStatusReviewRequired)
		line := pricedTestLine()
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil).Times(2)
		m.lines.EXPECT().GetByID(gomock.Any(), "d-1").Return(line, nil)
		m.rates.EXPECT().Load(gomock.Any()).Return(pricing.DefaultRateConfig(), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{line}, nil)
		m.corrections.EXPECT().AppendWithRecompute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, c entities.Correction, l entities.DocumentLine, saved entities.Quote, _ int64) (entities.Correction, error) {
				if c.Field != entities.CorrectionFieldWordCount || c.OriginalValue != "900" || c.CorrectedValue != "1200" {
					t.Fatalf("unexpected ledger entry: %+v", c)
				}
				if c.Actor != "staff-1" || c.QuoteID != "q-1" || c.DocumentLineID != "d-1" {
					t.Fatalf("unexpected ledger attribution: %+v", c)
				}
				// 1200 words / 225 wpp = 5.34 -> 5.4 pages at $80
				if !l.LineTotal.Equal(decimal.RequireFromString("432")) {
					t.Fatalf("expected repriced line 432, got %s", l.LineTotal)
				}
				if !saved.Subtotal.Equal(decimal.RequireFromString("432")) {
					t.Fatalf("expected subtotal 432, got %s", saved.Subtotal)
				}
				return c, nil
			},
		)

		res, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-1", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: entities.CorrectionFieldWordCount, CorrectedValue: "1200",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Correction.ID == "" || res.Line.WordCount != 1200 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("stale quote version", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		q := activeTestQuote(entities.QuoteStatusReviewRequired)
		line := pricedTestLine()
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.lines.EXPECT().GetByID(gomock.Any(), "d-1").Return(line, nil)
		m.rates.EXPECT().Load(gomock.Any()).Return(pricing.DefaultRateConfig(), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{line}, nil)
		m.corrections.EXPECT().AppendWithRecompute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).Return(entities.Correction{}, nil)

		_, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-1", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: entities.CorrectionFieldWordCount, CorrectedValue: "1200",
		})
		if !errors.Is(err, ErrStaleRecompute) {
			t.Fatalf("expected ErrStaleRecompute, got %v", err)
		}
	})

	t.Run("rate override is normalized at entry", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		q := activeTestQuote(entities.QuoteStatusReviewRequired)
		line := pricedTestLine()
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil).Times(2)
		m.lines.EXPECT().GetByID(gomock.Any(), "d-1").Return(line, nil)
		m.rates.EXPECT().Load(gomock.Any()).Return(pricing.DefaultRateConfig(), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{line}, nil)
		m.corrections.EXPECT().AppendWithRecompute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, c entities.Correction, l entities.DocumentLine, _ entities.Quote, _ int64) (entities.Correction, error) {
				// 81 rounds up to the next $2.50 step
				if c.CorrectedValue != "82.5" {
					t.Fatalf("expected normalized override 82.5, got %s", c.CorrectedValue)
				}
				if l.PerPageRateOverride == nil || !l.PerPageRateOverride.Equal(decimal.RequireFromString("82.5")) {
					t.Fatalf("expected override on line, got %+v", l.PerPageRateOverride)
				}
				return c, nil
			},
		)

		_, err := uc.SubmitCorrection(context.Background(), "r-1", "staff-1", entities.RoleReviewer, CorrectionCommand{
			DocumentLineID: "d-1", Field: entities.CorrectionFieldPerPageRate, CorrectedValue: "81",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReviewUseCase_Approve(t *testing.T) {
	t.Run("unclaimed review cannot be approved", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(pendingTestReview(), nil)

		_, err := uc.Approve(context.Background(), "r-1", "staff-1", entities.RoleReviewer, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unpriced line blocks approval", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{{ID: "d-1", QuoteID: "q-1"}}, nil)

		_, err := uc.Approve(context.Background(), "r-1", "staff-1", entities.RoleReviewer, "")
		if !errors.Is(err, ErrQuoteNotPriced) {
			t.Fatalf("expected ErrQuoteNotPriced, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{pricedTestLine()}, nil)
		m.reviews.EXPECT().Resolve(gomock.Any(), gomock.Any(), "staff-1").DoAndReturn(
			func(_ context.Context, r entities.ReviewRecord, _ string) (entities.ReviewRecord, error) {
				if r.Status != entities.ReviewStatusApproved || r.AssignedTo != "" {
					t.Fatalf("unexpected resolution: %+v", r)
				}
				if r.ResolutionNotes != "looks right" {
					t.Fatalf("expected notes, got %q", r.ResolutionNotes)
				}
				return r, nil
			},
		)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusReviewRequired, entities.QuoteStatusQuoteReady).Return(activeTestQuote(entities.QuoteStatusQuoteReady), nil)

		r, err := uc.Approve(context.Background(), "r-1", "staff-1", entities.RoleReviewer, " looks right ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.ReviewStatusApproved {
			t.Fatalf("expected approved, got %s", r.Status)
		}
	})
}

func TestReviewUseCase_Reject(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		uc, _ := newReviewUseCaseWithMocks(t)
		_, err := uc.Reject(context.Background(), "r-1", "staff-1", entities.RoleReviewer, "  ", nil)
		if !errors.Is(err, ErrRejectionReasonRequired) {
			t.Fatalf("expected ErrRejectionReasonRequired, got %v", err)
		}
	})

	t.Run("unknown document id", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{pricedTestLine()}, nil)

		_, err := uc.Reject(context.Background(), "r-1", "staff-1", entities.RoleReviewer, "illegible scan", []string{"d-9"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("success sends quote back to details_pending", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.lines.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DocumentLine{pricedTestLine()}, nil)
		m.reviews.EXPECT().Resolve(gomock.Any(), gomock.Any(), "staff-1").DoAndReturn(
			func(_ context.Context, r entities.ReviewRecord, _ string) (entities.ReviewRecord, error) {
				if r.Status != entities.ReviewStatusRejected || r.ResolutionNotes != "illegible scan" {
					t.Fatalf("unexpected resolution: %+v", r)
				}
				if len(r.RejectedDocumentIDs) != 1 || r.RejectedDocumentIDs[0] != "d-1" {
					t.Fatalf("expected rejected documents, got %v", r.RejectedDocumentIDs)
				}
				return r, nil
			},
		)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusReviewRequired, entities.QuoteStatusDetailsPending).Return(activeTestQuote(entities.QuoteStatusDetailsPending), nil)

		if _, err := uc.Reject(context.Background(), "r-1", "staff-1", entities.RoleReviewer, "illegible scan", []string{"d-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReviewUseCase_Escalate(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		uc, _ := newReviewUseCaseWithMocks(t)
		_, err := uc.Escalate(context.Background(), "r-1", "staff-1", entities.RoleReviewer, false)
		if !errors.Is(err, ErrEscalationNotConfirmed) {
			t.Fatalf("expected ErrEscalationNotConfirmed, got %v", err)
		}
	})

	t.Run("spawns a senior review", func(t *testing.T) {
		uc, m := newReviewUseCaseWithMocks(t)
		m.reviews.EXPECT().GetByID(gomock.Any(), "r-1").Return(claimedTestReview("staff-1"), nil)
		m.reviews.EXPECT().Resolve(gomock.Any(), gomock.Any(), "staff-1").DoAndReturn(
			func(_ context.Context, r entities.ReviewRecord, _ string) (entities.ReviewRecord, error) {
				if r.Status != entities.ReviewStatusEscalated || r.AssignedTo != "" {
					t.Fatalf("unexpected resolution: %+v", r)
				}
				return r, nil
			},
		)
		m.reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ReviewRecord{})).DoAndReturn(
			func(_ context.Context, r entities.ReviewRecord) (entities.ReviewRecord, error) {
				if r.Status != entities.ReviewStatusPending || r.RequiredClaimRole != entities.RoleSeniorReviewer {
					t.Fatalf("unexpected escalation record: %+v", r)
				}
				if r.QuoteID != "q-1" || r.AssignedTo != "" {
					t.Fatalf("unexpected escalation record: %+v", r)
				}
				last := r.TriggerReasons[len(r.TriggerReasons)-1]
				if last != entities.TriggerEscalated {
					t.Fatalf("expected escalated trigger, got %v", r.TriggerReasons)
				}
				return r, nil
			},
		)

		next, err := uc.Escalate(context.Background(), "r-1", "staff-1", entities.RoleReviewer, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.ID == "" || next.Status != entities.ReviewStatusPending {
			t.Fatalf("unexpected next review: %+v", next)
		}
	})
}
