package api

import (
	"github.com/gin-gonic/gin"

	"pulse/session"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *session.Session) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterSessionRoutes(r, s)
	RegisterHealthRoutes(r)
	return r
}
