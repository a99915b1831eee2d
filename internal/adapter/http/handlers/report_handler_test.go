package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"horecamart/internal/adapter/http/handlers/mocks"
	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_ClientActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	activity := mocks.NewMockIClientActivityUseCase(ctrl)
	h := NewReportHandler(activity, mocks.NewMockIBusinessReportUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/reports/client-activity", h.ClientActivity)

	activity.EXPECT().AggregateClientActivity(gomock.Any()).Return(entities.ClientActivityReport{
		Clients: []entities.ClientStats{
			{ID: "c-1", CompanyName: "Alpha", TotalQuotations: 2},
			{ID: "virtual_r-1", CompanyName: "Unknown Company", Virtual: true, TotalMessages: 1},
		},
		TotalQuotationValue: 90,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/client-activity", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Clients             []map[string]any `json:"clients"`
		TotalQuotationValue float64          `json:"total_quotation_value"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res.Clients) != 2 || res.TotalQuotationValue != 90 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
	if res.Clients[1]["virtual"] != true {
		t.Fatalf("expected virtual flag on second client: %s", w.Body.String())
	}
}

func TestReportHandler_TopProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to the quotations source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIBusinessReportUseCase(ctrl)
		h := NewReportHandler(mocks.NewMockIClientActivityUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/reports/top-products", h.TopProducts)

		reports.EXPECT().TopProducts(gomock.Any(), usecase.RankingSourceQuotations).
			Return([]entities.ProductRanking{{ProductID: "p-1", TotalQuantity: 5, TotalAmount: 50}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 1 || res[0]["product_id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("orders source passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIBusinessReportUseCase(ctrl)
		h := NewReportHandler(mocks.NewMockIClientActivityUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/reports/top-products", h.TopProducts)

		reports.EXPECT().TopProducts(gomock.Any(), usecase.RankingSourceOrders).
			Return([]entities.ProductRanking{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-products?source=orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid source maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIBusinessReportUseCase(ctrl)
		h := NewReportHandler(mocks.NewMockIClientActivityUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/reports/top-products", h.TopProducts)

		reports.EXPECT().TopProducts(gomock.Any(), usecase.ProductRankingSource("invoices")).
			Return(nil, usecase.ErrInvalidRankingSource)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-products?source=invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportHandler_ClientSummaries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reports := mocks.NewMockIBusinessReportUseCase(ctrl)
	h := NewReportHandler(mocks.NewMockIClientActivityUseCase(ctrl), reports)

	r := gin.New()
	r.GET("/v1/reports/client-summaries", h.ClientSummaries)

	reports.EXPECT().ClientSummaries(gomock.Any()).Return([]entities.ClientReport{
		{ClientID: "c-1", CompanyName: "Alpha", TotalQuotations: 2, TotalOrders: 1, ConversionRate: 50},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/client-summaries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 1 || res[0]["conversion_rate"] != float64(50) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestReportHandler_OrderStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reports := mocks.NewMockIBusinessReportUseCase(ctrl)
	h := NewReportHandler(mocks.NewMockIClientActivityUseCase(ctrl), reports)

	r := gin.New()
	r.GET("/v1/reports/order-stats", h.OrderStats)

	reports.EXPECT().OrderStats(gomock.Any()).Return(entities.OrderStats{
		Total: 6, WaitingPayment: 2, ConfirmingSupplier: 1, ShipmentReady: 1, Delivered: 1, TotalValue: 155,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/order-stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["total"] != float64(6) || res["total_value"] != float64(155) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
