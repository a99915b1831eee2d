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

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientDirectoryUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.GET("/v1/clients", h.ListClients)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Client{
		{ID: "c-1", CompanyName: "Alpha"},
		{ID: "c-2", CompanyName: "Beta"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 2 {
		t.Fatalf("expected 2 clients in body: %s", w.Body.String())
	}
}

func TestClientHandler_GetClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientDirectoryUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:client_id", h.GetClient)

		uc.EXPECT().GetByID(gomock.Any(), "c-missing").Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientDirectoryUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:client_id", h.GetClient)

		uc.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", CompanyName: "Alpha"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["company_name"] != "Alpha" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
