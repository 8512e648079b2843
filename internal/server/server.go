// Package server is the HTTP transport adapter: JSON in, JSON out,
// UTF-8 Arabic payloads.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/topprix-dz/internal/agent"
)

// Server wires the gin router to the response builder
type Server struct {
	builder *agent.Builder
	logger  zerolog.Logger
	engine  *gin.Engine
}

// New creates the HTTP server and registers all routes
func New(builder *agent.Builder, environment string, logger zerolog.Logger) *Server {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		builder: builder,
		logger:  logger.With().Str("component", "server").Logger(),
	}

	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery())

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	engine.GET("/info", s.handleInfo)
	engine.POST("/agent", s.handleAgent)
	engine.POST("/api/search", s.handleSearch)

	s.engine = engine
	return s
}

// Handler returns the router for mounting into an http.Server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogger tags each request with an id and logs its outcome
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		startTime := time.Now()

		c.Next()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(startTime)).
			Msg("Request handled")
	}
}
