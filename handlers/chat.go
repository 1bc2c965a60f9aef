package handlers

import (
	"net/http"

	"sprout/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the scripted campus assistant.
type ChatHandler struct {
	Service chat.ChatService
}

// NewChatHandler returns a handler bound to the given service.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// ChatMessageHandler handles POST /api/chat.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.Service.NewSession()
	}

	reply := h.Service.Reply(sessionID, req.Message)
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "reply": reply})
}
