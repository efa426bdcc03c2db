package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessLog is an append-only record of a user-triggered event. UsuarioID is
// nullable so anonymous events can be recorded. Rows are never updated or
// deleted.
type AccessLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UsuarioID *uuid.UUID `gorm:"type:uuid;index" json:"usuario_id,omitempty"`
	EventType string     `gorm:"not null" json:"event_type"`
	IPAddress string     `gorm:"column:ip_address" json:"ip_address"`
	UserAgent string     `json:"user_agent,omitempty"`
	Browser   string     `json:"browser,omitempty"`
	Timestamp time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (AccessLog) TableName() string {
	return "access_logs"
}

func (a *AccessLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
