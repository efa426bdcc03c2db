package handlers

import (
	"net/http"
	"strconv"

	"buenlibro-backend/models"
	"buenlibro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LogHandler struct {
	Auditoria *services.Auditoria
}

// GetLogs returns the most recent access log entries, newest first. The
// optional ?limit query is capped by the service.
func (h *LogHandler) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.Auditoria.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateLog records an event reported by a client. usuario_id is optional;
// anonymous events are accepted. The IP falls back to the connection's when
// the body omits it.
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req struct {
		UsuarioID *uuid.UUID `json:"usuario_id"`
		EventType string     `json:"event_type" binding:"required"`
		IPAddress string     `json:"ip_address"`
		UserAgent string     `json:"user_agent"`
		Browser   string     `json:"browser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IPAddress == "" {
		req.IPAddress = c.ClientIP()
	}

	id, err := h.Auditoria.RecordEvent(models.AccessLog{
		UsuarioID: req.UsuarioID,
		EventType: req.EventType,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		Browser:   req.Browser,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}
