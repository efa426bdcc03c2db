package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a catalog entry. Products are never physically removed:
// "deleting" one flips IsActive to false and every shopper-facing read
// filters on it.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Nombre      string          `gorm:"not null" json:"nombre"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Categoria   string          `gorm:"index;not null" json:"categoria"`
	Descripcion string          `json:"descripcion"`
	ImagenURL   string          `json:"imagen_url"`
	Stock       int             `gorm:"default:0" json:"stock"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Producto) TableName() string {
	return "productos"
}

func (p *Producto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
