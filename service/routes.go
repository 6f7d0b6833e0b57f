package service

import (
	"github.com/gin-gonic/gin"

	"bookapi/config/logger"
)

func SetupRoutes(h *Handler, log logger.Logger) *gin.Engine {
	routes := gin.New()
	routes.Use(gin.Recovery(), RequestLogger(log.WithComponent("HTTP")))

	routes.GET("/activity/:username", h.Activity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(h.CacheUserRequest)

		cachedRoutes.GET("/books", h.ListBooks)
		cachedRoutes.GET("/books/:id", h.GetBookById)
		cachedRoutes.POST("/books", h.CreateBook)
		cachedRoutes.PUT("/books/:id", h.UpdateBookById)
		cachedRoutes.DELETE("/books/:id", h.DeleteBookById)
		cachedRoutes.GET("/search", h.SearchBooks)
		cachedRoutes.GET("/store", h.Store)
	}

	return routes
}
