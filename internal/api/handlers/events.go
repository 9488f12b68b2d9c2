package handlers

import (
	"io"

	"band-scheduler-backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams mutation events over SSE
type EventsHandler struct {
	hub *hub.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(h *hub.Hub) *EventsHandler {
	return &EventsHandler{hub: h}
}

// Stream handles GET /events. The connection stays open until the client
// disconnects; every mutation event is written as one SSE message.
func (h *EventsHandler) Stream(c *gin.Context) {
	client := h.hub.Register()
	defer h.hub.Unregister(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
