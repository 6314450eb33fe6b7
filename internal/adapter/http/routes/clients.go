package routes

import (
	"github.com/gin-gonic/gin"

	"gestao_os/internal/adapter/http/handlers"
)

const PathClients = "/clients"

func addClientRoutes(rg *gin.RouterGroup, handler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", handler.Create)
		clients.GET("", handler.List)
		clients.GET("/:id", handler.GetByID)
		clients.PUT("/:id", handler.Update)
		clients.DELETE("/:id", handler.Delete)
	}
}
