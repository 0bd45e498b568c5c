// Package server exposes the assistant over HTTP.
package server

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:embed index.html
var chatPage []byte

// Responder runs one conversational turn.
type Responder interface {
	Respond(ctx context.Context, sessionID, message string) (string, error)
}

// Sessions clears conversation history.
type Sessions interface {
	ClearSession(ctx context.Context, sessionID string)
}

type Handler struct {
	runner   Responder
	sessions Sessions
}

func NewHandler(runner Responder, sessions Sessions) *Handler {
	return &Handler{runner: runner, sessions: sessions}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())

	router.GET("/", h.chatUI)
	router.GET("/health", h.healthCheck)
	router.POST("/chat", h.chat)
	router.DELETE("/chat/:session_id", h.clearSession)
}

func (h *Handler) chatUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", chatPage)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// chat runs one turn. A missing session_id starts a fresh session and the
// generated id is echoed back so the client can continue it.
func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.runner.Respond(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("chat turn failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"reply":      reply,
	})
}

func (h *Handler) clearSession(c *gin.Context) {
	h.sessions.ClearSession(c.Request.Context(), c.Param("session_id"))
	c.Status(http.StatusNoContent)
}
