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

func sampleTechnician(status entities.TechnicianStatus) *entities.Technician {
	return entities.RehydrateTechnician("tech-1", "Carlos Silva", "carlos@oficina.com.br", "11912345678", "Motor", status, time.Now().UTC())
}

func TestTechnicianHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.POST("/v1/technicians", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateTechnicianCommand{
			Name:      "Carlos Silva",
			Email:     "carlos@oficina.com.br",
			Specialty: "Motor",
		}).Return(sampleTechnician(entities.TechnicianStatusAtivo), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString(`{"name":"Carlos Silva","email":"carlos@oficina.com.br","specialty":"Motor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ativo" || body["status_label"] != "Ativo" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.POST("/v1/technicians", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTechnicianHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.PATCH("/v1/technicians/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), usecase.ChangeTechnicianStatusCommand{ID: "tech-1", Status: "ferias"}).
			Return(sampleTechnician(entities.TechnicianStatusFerias), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/technicians/tech-1/status", bytes.NewBufferString(`{"status":"ferias"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status_label"] != "Férias" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already in status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.PATCH("/v1/technicians/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Return(nil, faults.NewAlreadyInStatus("Ativo"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/technicians/tech-1/status", bytes.NewBufferString(`{"status":"ativo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ALREADY_IN_STATUS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTechnicianHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by assigned work orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.DELETE("/v1/technicians/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), usecase.DeleteTechnicianCommand{ID: "tech-1"}).
			Return(faults.NewRuleViolation("technician_delete_requires_no_work_orders", "technician still has work orders assigned"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/technicians/tech-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "BUSINESS_RULE_VIOLATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.DELETE("/v1/technicians/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), usecase.DeleteTechnicianCommand{ID: "tech-1"}).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/technicians/tech-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
