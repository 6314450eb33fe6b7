package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestao_os/internal/adapter/http/dto/request"
	response "gestao_os/internal/adapter/http/dto/response"
	"gestao_os/internal/usecase"
)

// ClientHandler handles HTTP requests for client registrations.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToCreateCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), payload.ToUpdateCommand(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), usecase.DeleteClientCommand{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), usecase.GetClientQuery{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	page, pageSize, filter := listParams(c)
	result, err := h.usecase.List(c.Request.Context(), usecase.ListClientsQuery{
		Filter:   filter,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromClient))
}
