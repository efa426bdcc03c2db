package services

import (
	"fmt"

	"buenlibro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxLogEntries bounds how many access log rows a single listing returns.
const MaxLogEntries = 100

// Auditoria is the append-only recorder of user-triggered events. Entries
// are never mutated or deleted.
type Auditoria struct {
	DB *gorm.DB
}

// RecordEvent appends an access log entry and returns its assigned id.
// Optional fields (usuario_id, user_agent, browser) may be empty; anonymous
// events are allowed.
func (s *Auditoria) RecordEvent(entry models.AccessLog) (uuid.UUID, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("registrar evento: %w", err)
	}
	return entry.ID, nil
}

// ListRecent returns the newest entries first, bounded to limit. Values
// outside (0, MaxLogEntries] fall back to MaxLogEntries.
func (s *Auditoria) ListRecent(limit int) ([]models.AccessLog, error) {
	if limit <= 0 || limit > MaxLogEntries {
		limit = MaxLogEntries
	}

	entries := []models.AccessLog{}
	err := s.DB.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("listar eventos: %w", err)
	}
	return entries, nil
}
