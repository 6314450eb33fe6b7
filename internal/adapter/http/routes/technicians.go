package routes

import (
	"github.com/gin-gonic/gin"

	"gestao_os/internal/adapter/http/handlers"
)

const PathTechnicians = "/technicians"

func addTechnicianRoutes(rg *gin.RouterGroup, handler *handlers.TechnicianHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", handler.Create)
		technicians.GET("", handler.List)
		technicians.GET("/:id", handler.GetByID)
		technicians.PUT("/:id", handler.Update)
		technicians.PATCH("/:id/status", handler.ChangeStatus)
		technicians.DELETE("/:id", handler.Delete)
	}
}
