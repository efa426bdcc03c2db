package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemCarrito is a single cart line. The unique index on
// (usuario_id, producto_id) guarantees at most one line per user/product
// pair and is the conflict target of the merge-on-add upsert.
type ItemCarrito struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UsuarioID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_carrito_usuario_producto" json:"usuario_id"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_carrito_usuario_producto" json:"producto_id"`
	Cantidad   int       `gorm:"not null;default:1" json:"cantidad"`
	// AddedAt is set once at insertion and never touched by quantity changes.
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (ItemCarrito) TableName() string {
	return "carrito"
}

func (i *ItemCarrito) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// LineaCarrito is the read shape of GET /api/carrito: the cart line joined
// with the product's display fields.
type LineaCarrito struct {
	CarritoID  uuid.UUID       `json:"carrito_id"`
	ProductoID uuid.UUID       `json:"producto_id"`
	Cantidad   int             `json:"cantidad"`
	AddedAt    time.Time       `json:"added_at"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	ImagenURL  string          `json:"imagen_url"`
	Categoria  string          `json:"categoria"`
}
