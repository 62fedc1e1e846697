// Package httpapi exposes the REST endpoints consumed by the CLI client.
package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine: CORS, the public auth endpoints, and
// the token-guarded entry endpoints under /api/v1.
func NewRouter(authHandler *AuthHandler, entryHandler *EntryHandler, secretKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)

		entries := v1.Group("/entries", BearerAuth(secretKey))
		{
			entries.GET("", entryHandler.List)
			entries.GET("/stats", entryHandler.Stats)
			entries.POST("", entryHandler.Create)
			entries.DELETE("/:id", entryHandler.Delete)
		}
	}

	return router
}
