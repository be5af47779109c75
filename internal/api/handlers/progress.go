package handlers

import (
	"io"
	"time"

	"claims-analytics-backend/internal/logger"
	"claims-analytics-backend/internal/service"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// ProgressHandler streams upload progress over server-sent events
type ProgressHandler struct {
	identity     service.IdentityServiceInterface
	hub          *service.ProgressHub
	maxStreamAge time.Duration
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(identity service.IdentityServiceInterface, hub *service.ProgressHub, maxStreamAge time.Duration) *ProgressHandler {
	return &ProgressHandler{
		identity:     identity,
		hub:          hub,
		maxStreamAge: maxStreamAge,
	}
}

// Stream pushes the caller's upload progress as data-only SSE events. The
// connection is closed by the client going away or by the stream age ceiling,
// whichever comes first.
// @Summary Upload progress stream
// @Description Server-sent event stream of the caller's recent upload sessions
// @Tags upload
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /api/upload/progress [get]
func (h *ProgressHandler) Stream(c *gin.Context) {
	principal, err := h.identity.Resolve(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	events, cancel := h.hub.Subscribe(principal.Profile.ID)
	defer cancel()

	log := logger.FromGinContext(c)
	log.Infof("progress stream opened")

	if err := sse.Encode(c.Writer, sse.Event{Data: gin.H{"type": "connected"}}); err != nil {
		log.Warnf("failed to write connected event: %v", err)
		return
	}
	c.Writer.Flush()

	deadline := time.NewTimer(h.maxStreamAge)
	defer deadline.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			if event.Heartbeat {
				if err := sse.Encode(w, sse.Event{Data: gin.H{"type": "heartbeat"}}); err != nil {
					return false
				}
				return true
			}
			if err := sse.Encode(w, sse.Event{Data: event.Update}); err != nil {
				return false
			}
			return true
		case <-deadline.C:
			log.Infof("progress stream reached age ceiling")
			return false
		case <-c.Request.Context().Done():
			return false
		}
	})

	log.Infof("progress stream closed")
}
