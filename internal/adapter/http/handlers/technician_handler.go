package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestao_os/internal/adapter/http/dto/request"
	response "gestao_os/internal/adapter/http/dto/response"
	"gestao_os/internal/usecase"
)

// TechnicianHandler handles HTTP requests for technicians.

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) Create(c *gin.Context) {
	var payload request.TechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	technician, err := h.usecase.Create(c.Request.Context(), payload.ToCreateCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTechnician(technician))
}

func (h *TechnicianHandler) Update(c *gin.Context) {
	var payload request.TechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	technician, err := h.usecase.Update(c.Request.Context(), payload.ToUpdateCommand(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(technician))
}

// ChangeStatus applies the strict rule: requesting the current status fails
// with ALREADY_IN_STATUS.
func (h *TechnicianHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	technician, err := h.usecase.ChangeStatus(c.Request.Context(), usecase.ChangeTechnicianStatusCommand{
		ID:     c.Param("id"),
		Status: payload.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(technician))
}

func (h *TechnicianHandler) Delete(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), usecase.DeleteTechnicianCommand{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TechnicianHandler) GetByID(c *gin.Context) {
	technician, err := h.usecase.GetByID(c.Request.Context(), usecase.GetTechnicianQuery{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(technician))
}

func (h *TechnicianHandler) List(c *gin.Context) {
	page, pageSize, filter := listParams(c)
	result, err := h.usecase.List(c.Request.Context(), usecase.ListTechniciansQuery{
		Filter:   filter,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromTechnician))
}
