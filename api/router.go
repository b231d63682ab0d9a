package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesdash/internal/sales"
)

// InitRoutes registers all sales CRUD endpoints on the given Gin engine.
// It initializes the storage, service, and handler, then binds each HTTP
// method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, logger *zap.Logger) {
	salesStorage := sales.NewLocalStorage()
	salesService := sales.NewService(salesStorage, logger)
	InitRoutesWithService(e, salesService, logger)
}

// InitRoutesWithService binds routes to an existing service, which lets
// tests seed the storage before the engine starts serving.
func InitRoutesWithService(e *gin.Engine, salesService *sales.Service, logger *zap.Logger) {
	salesHandler := NewSalesHandler(salesService, logger)

	e.GET("/sales", salesHandler.handleListSales)
	e.POST("/sales", salesHandler.handleCreateSale)
	e.PUT("/sales/:id", salesHandler.handleUpdateSale)
	e.DELETE("/sales/:id", salesHandler.handleDeleteSale)
	e.POST("/sales/bulk", salesHandler.handleBulkCreate)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
