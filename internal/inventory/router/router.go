package router

import (
	"inventory/internal/inventory/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.ItemHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "x-user-id"},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Item Routes
	v1.POST("/items", h.PostItem)
	v1.GET("/items", h.GetItems)
	v1.GET("/items/:name", h.GetItem)
	v1.PUT("/items/:name", h.PutItem)
	v1.DELETE("/items/:name", h.DeleteItem)
}
