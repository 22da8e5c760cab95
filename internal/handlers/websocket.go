package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megdcosta/frijio/internal/auth"
	"github.com/megdcosta/frijio/internal/websocket"
)

type WebSocketHandler struct {
	hub *websocket.Hub
}

func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket upgrades the connection; clients then subscribe to
// fridge rooms over the socket.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	h.hub.ServeWS(c, sess.UserID)
}
