package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gestao_os/docs" // swag output
	"gestao_os/internal/adapter/http/handlers"
	repository2 "gestao_os/internal/adapter/persistence/repository"
	"gestao_os/internal/infrastructure/database"
	"gestao_os/internal/usecase"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	technicianRepo := repository2.NewTechnicianDynamoRepository(ddb)

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, technicianRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	technicianUseCase := usecase.NewTechnicianUseCase(technicianRepo, workOrderRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler)
	addClientRoutes(v1, clientHandler)
	addTechnicianRoutes(v1, technicianHandler)
}

func setMiddlewares() {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
