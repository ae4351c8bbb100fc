package router

import (
	"github.com/gin-gonic/gin"

	"contract-consult/api/handler"
)

func RegisterRoutes(r *gin.Engine, reviewH *handler.ReviewHandler) {
	r.GET("/", reviewH.Dashboard)
	r.GET("/health", reviewH.Health)

	api := r.Group("/api")
	{
		api.GET("/output", reviewH.Output)
		api.POST("/chat", reviewH.Chat)
	}
}
