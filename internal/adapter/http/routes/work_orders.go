package routes

import (
	"github.com/gin-gonic/gin"

	"gestao_os/internal/adapter/http/handlers"
)

const PathWorkOrders = "/work-orders"

func addWorkOrderRoutes(rg *gin.RouterGroup, handler *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", handler.Create)
		workOrders.GET("", handler.List)
		workOrders.GET("/:id", handler.GetByID)
		workOrders.PUT("/:id", handler.Update)
		workOrders.PATCH("/:id/status", handler.ChangeStatus)
		workOrders.DELETE("/:id", handler.Delete)
	}
}
