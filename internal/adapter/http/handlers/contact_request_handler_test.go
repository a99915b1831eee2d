package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"horecamart/internal/adapter/http/handlers/mocks"
	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContactRequestHandler_SubmitContactRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewContactRequestHandler(mocks.NewMockIContactRequestUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/contact-requests", h.SubmitContactRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact-requests", bytes.NewBufferString(`{"name":"Ann"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid input maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactRequestUseCase(ctrl)
		h := NewContactRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/contact-requests", h.SubmitContactRequest)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.ContactRequest{}, usecase.ErrInvalidContactRequest)

		body := `{"name":"Ann","email":"ann@alpha.test","message":"   "}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contact-requests", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIContactRequestUseCase(ctrl)
		h := NewContactRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/contact-requests", h.SubmitContactRequest)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input usecase.SubmitContactRequestInput) (entities.ContactRequest, error) {
				if input.Email != "ann@alpha.test" || input.Company != "Alpha Hotels" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.ContactRequest{ID: "r-1", Name: input.Name, Email: input.Email, Company: input.Company, Message: input.Message, CreatedAt: time.Now().UTC()}, nil
			})

		body := `{"name":"Ann","company":"Alpha Hotels","email":"ann@alpha.test","message":"need 3 ovens"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contact-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "r-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContactRequestHandler_ListContactRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContactRequestUseCase(ctrl)
	h := NewContactRequestHandler(uc)

	r := gin.New()
	r.GET("/v1/contact-requests", h.ListContactRequests)

	uc.EXPECT().List(gomock.Any()).Return([]entities.ContactRequest{
		{ID: "r-1", Name: "Ann"},
		{ID: "r-2", Name: "Bob"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/contact-requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if len(res) != 2 {
		t.Fatalf("expected 2 requests in body: %s", w.Body.String())
	}
}
