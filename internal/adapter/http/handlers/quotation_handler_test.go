package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"horecamart/internal/adapter/http/handlers/mocks"
	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuotationHandler(mocks.NewMockIQuotationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuotationHandler(mocks.NewMockIQuotationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"client_id":"c-1"}`))
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
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input usecase.CreateQuotationInput) (entities.Quotation, []entities.QuotationItem, error) {
				if input.ClientID != "c-1" || len(input.Items) != 1 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Quotation{ID: "q-1", ClientID: "c-1", TotalAmount: 30, FinalAmount: 30, Status: entities.QuotationStatusDraft},
					[]entities.QuotationItem{{ID: "qi-1", QuotationID: "q-1", ProductID: "p-1", Quantity: 3, UnitPrice: 10, TotalPrice: 30}},
					nil
			})

		body := `{"client_id":"c-1","items":[{"product_id":"p-1","quantity":3,"unit_price":10}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res struct {
			ID    string           `json:"id"`
			Items []map[string]any `json:"items"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.ID != "q-1" || len(res.Items) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_UpdateQuotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reserved status maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:quotation_id/status", h.UpdateQuotationStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusConverted).
			Return(entities.Quotation{}, usecase.ErrQuotationStatusReserved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/status", bytes.NewBufferString(`{"status":"converted_to_order"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:quotation_id/status", h.UpdateQuotationStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusSent).
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusSent}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/status", bytes.NewBufferString(`{"status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:quotation_id", h.GetQuotation)

		uc.EXPECT().GetWithItems(gomock.Any(), "q-missing").Return(entities.Quotation{}, nil, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	if got := mapQuotationError(usecase.ErrInvalidClientID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrNoQuotationItems); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrQuotationStatusReserved); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuotationError(usecase.ErrQuotationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotationError(usecase.ErrQuotationAlreadyConverted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
