package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/session"
	"pulse/types"
)

// CommandRequest is one raw free-text command.
type CommandRequest struct {
	Text string `json:"text" binding:"required"`
}

// ModeRequest selects the active display mode.
type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// LiveRequest toggles the live refresh timer.
type LiveRequest struct {
	Live *bool `json:"live" binding:"required"`
}

// TrackRequest looks up an author handle from the reel.
type TrackRequest struct {
	Handle string `json:"handle" binding:"required"`
}

// ScrollRequest reports the reel scroll position.
type ScrollRequest struct {
	Offset   float64 `json:"offset"`
	Viewport float64 `json:"viewport" binding:"required"`
}

// RegisterSessionRoutes registers the session state and command routes.
func RegisterSessionRoutes(r *gin.Engine, s *session.Session) {
	grp := r.Group("/api")

	grp.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Snapshot())
	})

	// Dispatch runs in the background: video jobs poll for minutes and the
	// caller observes progress through /api/state.
	grp.POST("/command", func(c *gin.Context) {
		var req CommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		go s.HandleRequest(context.Background(), req.Text)
		c.JSON(http.StatusAccepted, gin.H{"status": "dispatched"})
	})

	grp.POST("/mode", func(c *gin.Context) {
		var req ModeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mode, ok := types.ParseViewMode(req.Mode)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode: " + req.Mode})
			return
		}
		s.SetMode(mode)
		c.JSON(http.StatusOK, s.Snapshot())
	})

	grp.POST("/live", func(c *gin.Context) {
		var req LiveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.SetLive(*req.Live)
		c.JSON(http.StatusOK, s.Snapshot())
	})

	grp.POST("/track", func(c *gin.Context) {
		var req TrackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		go s.TrackIdentity(context.Background(), req.Handle)
		c.JSON(http.StatusAccepted, gin.H{"status": "dispatched"})
	})

	grp.POST("/reel/scroll", func(c *gin.Context) {
		var req ScrollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.SetReelScroll(req.Offset, req.Viewport)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterHealthRoutes registers the health probe.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
