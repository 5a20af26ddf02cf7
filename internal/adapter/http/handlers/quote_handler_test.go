package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"linguaquote/internal/adapter/http/handlers/mocks"
	"linguaquote/internal/domain/entities"
	"linguaquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"target_language":"fr"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), usecase.CreateQuoteCommand{
			CustomerRef:    "cust-42",
			TargetLanguage: "fr",
			Turnaround:     "standard",
		}).Return(entities.Quote{ID: "q-1", QuoteNumber: "Q-2026-000123", Status: entities.QuoteStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_ref":"cust-42","target_language":"fr","turnaround":"standard"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["quote_number"] != "Q-2026-000123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_AttachDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing page count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/documents", h.AttachDocument)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/documents", bytes.NewBufferString(`{"file_name":"birth.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/documents", h.AttachDocument)

		uc.EXPECT().AttachDocument(gomock.Any(), "q-1", gomock.Any()).Return(entities.DocumentLine{}, usecase.ErrQuoteExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/documents", bytes.NewBufferString(`{"file_name":"birth.pdf","page_count":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/documents", h.AttachDocument)

		uc.EXPECT().AttachDocument(gomock.Any(), "q-1", usecase.AttachDocumentCommand{
			FileName:      "birth.pdf",
			PageCount:     2,
			WordCount:     450,
			Certification: entities.CertificationType("sworn"),
		}).Return(entities.DocumentLine{ID: "d-1", QuoteID: "q-1", FileName: "birth.pdf"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/documents", bytes.NewBufferString(`{"file_name":"birth.pdf","page_count":2,"word_count":450,"certification":"sworn"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "d-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ApplyAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("document not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/documents/:document_id/analysis", h.ApplyAnalysis)

		uc.EXPECT().ApplyAnalysis(gomock.Any(), "q-1", "d-9", gomock.Any()).Return(usecase.QuoteDetail{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/documents/d-9/analysis", bytes.NewBufferString(`{"confidence":0.9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/documents/:document_id/analysis", h.ApplyAnalysis)

		uc.EXPECT().ApplyAnalysis(gomock.Any(), "q-1", "d-1", usecase.AnalysisResultCommand{
			DetectedType: "birth_certificate",
			WordCount:    450,
			PageCount:    2,
			Complexity:   entities.ComplexityTier("standard"),
			Confidence:   0.92,
		}).Return(usecase.QuoteDetail{
			Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoteReady},
			Lines: []entities.DocumentLine{{ID: "d-1", QuoteID: "q-1"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/documents/d-1/analysis", bytes.NewBufferString(`{"detected_type":"birth_certificate","word_count":450,"page_count":2,"complexity":"standard","confidence":0.92}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quote map[string]any   `json:"quote"`
			Lines []map[string]any `json:"lines"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Quote["status"] != "quote_ready" || len(body.Lines) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_RecomputeTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad money value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/recompute", h.RecomputeTotals)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/recompute", bytes.NewBufferString(`{"delivery_fee":"ten"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/recompute", h.RecomputeTotals)

		uc.EXPECT().RecomputeTotals(gomock.Any(), "q-1", gomock.Any()).Return(usecase.QuoteDetail{}, usecase.ErrStaleRecompute)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/recompute", bytes.NewBufferString(`{"turnaround":"rush"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/recompute", h.RecomputeTotals)

		uc.EXPECT().RecomputeTotals(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.RecomputeCommand) (usecase.QuoteDetail, error) {
				if cmd.Turnaround != "rush" {
					t.Fatalf("expected rush turnaround, got %q", cmd.Turnaround)
				}
				if !cmd.Discount.Enabled || cmd.Discount.Value.String() != "10" {
					t.Fatalf("unexpected discount: %+v", cmd.Discount)
				}
				return usecase.QuoteDetail{Quote: entities.Quote{ID: "q-1"}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/recompute", bytes.NewBufferString(`{"turnaround":"rush","discount":{"enabled":true,"type":"percentage","value":"10","reason":"repeat customer"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_RequestReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/:id/review", h.RequestReview)

	uc.EXPECT().RequestReview(gomock.Any(), "q-1").Return(entities.ReviewRecord{ID: "r-1", QuoteID: "q-1", Status: entities.ReviewStatusPending}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/review", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "r-1" || body["status"] != "pending" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestQuoteHandler_FastQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing staff identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/fast", h.FastQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/fast", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("insufficient role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/fast", h.FastQuote)

		uc.EXPECT().FastQuote(gomock.Any(), "staff-7", entities.RoleReviewer, gomock.Any()).Return(usecase.QuoteDetail{}, usecase.ErrInsufficientRole)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/fast", bytes.NewBufferString(`{"customer_ref":"cust-42","target_language":"fr","lines":[{"file_name":"deed.pdf","page_count":3}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Staff-ID", "staff-7")
		req.Header.Set("X-Staff-Role", "reviewer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success with overrides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/fast", h.FastQuote)

		uc.EXPECT().FastQuote(gomock.Any(), "staff-7", entities.RoleAdmin, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.StaffRole, cmd usecase.FastQuoteCommand) (usecase.QuoteDetail, error) {
				if len(cmd.Lines) != 1 {
					t.Fatalf("expected 1 line, got %d", len(cmd.Lines))
				}
				l := cmd.Lines[0]
				if l.BillablePagesOverride == nil || l.BillablePagesOverride.String() != "2.5" {
					t.Fatalf("unexpected pages override: %v", l.BillablePagesOverride)
				}
				if l.PerPageRateOverride != nil {
					t.Fatalf("expected no rate override, got %v", l.PerPageRateOverride)
				}
				return usecase.QuoteDetail{Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoteReady}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/fast", bytes.NewBufferString(`{"customer_ref":"cust-42","target_language":"fr","lines":[{"file_name":"deed.pdf","page_count":3,"billable_pages_override":"2.5"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Staff-ID", "staff-7")
		req.Header.Set("X-Staff-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/pay", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrPaymentDeclined)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/pay", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/pay", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_CancelAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-9").Return(usecase.QuoteDetail{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/number/:number", h.GetQuoteByNumber)

		uc.EXPECT().GetByNumber(gomock.Any(), "Q-2026-000123").Return(usecase.QuoteDetail{Quote: entities.Quote{ID: "q-1", QuoteNumber: "Q-2026-000123"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/number/Q-2026-000123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidInput, http.StatusBadRequest},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrDocumentNotFound, http.StatusNotFound},
		{usecase.ErrQuoteExpired, http.StatusGone},
		{usecase.ErrInvalidTransition, http.StatusConflict},
		{usecase.ErrStaleRecompute, http.StatusConflict},
		{usecase.ErrQuoteNotPriced, http.StatusConflict},
		{usecase.ErrInsufficientRole, http.StatusForbidden},
		{usecase.ErrPaymentGatewayUnavailable, http.StatusServiceUnavailable},
		{usecase.ErrPaymentDeclined, http.StatusPaymentRequired},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapQuoteError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
