// Package api wires the HTTP surface: routing, CORS, and transparent
// decompression of brotli-encoded request bodies.
package api

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"

	"github.com/voxnav/voxnav/api/handlers"
)

// CORSMiddleware handles cross-origin requests from browser frontends.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Content-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// BrotliRequestMiddleware decompresses request bodies sent with
// Content-Encoding: br. Large matrices compress well, so clients are
// encouraged to use it.
func BrotliRequestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "br" {
			c.Request.Body = io.NopCloser(brotli.NewReader(c.Request.Body))
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())
	router.Use(BrotliRequestMiddleware())

	router.POST("/api/pathfinding/find-path", handlers.FindPathHandler)
	router.GET("/api/algorithms", handlers.AlgorithmsHandler)

	return router
}
