package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"gestao_os/internal/adapter/http/handlers/mocks"
	"gestao_os/internal/domain/entities"
	"gestao_os/internal/domain/faults"
	"gestao_os/internal/usecase"
)

func sampleClient() *entities.Client {
	return entities.RehydrateClient(
		"client-1", "Oficina Alfa Ltda", "Alfa Motors", "12345678000190",
		"contato@alfamotors.com.br", "11987654321",
		"Rua das Oficinas, 100", "São Paulo", "SP", "01310100",
		time.Now().UTC(),
	)
}

func TestClientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success carries formatted documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateClientCommand{})).Return(sampleClient(), nil)

		payload := `{"legal_name":"Oficina Alfa Ltda","cnpj":"12.345.678/0001-90","email":"contato@alfamotors.com.br","address":"Rua das Oficinas, 100","city":"São Paulo","state":"SP","postal_code":"01310-100"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["cnpj"] != "12345678000190" || body["cnpj_formatted"] != "12.345.678/0001-90" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["postal_code_formatted"] != "01310-100" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("argument error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, faults.NewArgument("CNPJ", "CNPJ must have exactly 14 digits"))

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"legal_name":"Oficina Alfa Ltda","cnpj":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_ARGUMENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_DeleteAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), usecase.DeleteClientCommand{ID: "client-1"}).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("get not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), usecase.GetClientQuery{ID: "client-9"}).Return(nil, faults.NewNotFound("client", "client-9"))

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/client-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClientHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.GET("/v1/clients", h.List)

	uc.EXPECT().List(gomock.Any(), usecase.ListClientsQuery{Page: 1, PageSize: 10}).
		Return(usecase.Page[*entities.Client]{
			Items:      []*entities.Client{sampleClient()},
			TotalCount: 1,
			TotalPages: 1,
			Page:       1,
			PageSize:   10,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	items, ok := body["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
