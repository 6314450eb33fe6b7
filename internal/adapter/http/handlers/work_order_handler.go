package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestao_os/internal/adapter/http/dto/request"
	response "gestao_os/internal/adapter/http/dto/response"
	"gestao_os/internal/usecase"
)

// WorkOrderHandler handles HTTP requests for work orders (ordens de serviço).

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.WorkOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

// Update replaces every mutable field. Requesting the current status here is
// a no-op, unlike the dedicated status endpoint.
func (h *WorkOrderHandler) Update(c *gin.Context) {
	var payload request.WorkOrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), payload.ToCommand(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ChangeStatus(c.Request.Context(), usecase.ChangeWorkOrderStatusCommand{
		ID:     c.Param("id"),
		Status: payload.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), usecase.DeleteWorkOrderCommand{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	details, err := h.usecase.GetByID(c.Request.Context(), usecase.GetWorkOrderQuery{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderDetails(details))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	page, pageSize, filter := listParams(c)
	result, err := h.usecase.List(c.Request.Context(), usecase.ListWorkOrdersQuery{
		Filter:   filter,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromWorkOrder))
}
