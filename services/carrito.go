package services

import (
	"fmt"

	"buenlibro-backend/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Carrito orchestrates cart mutations. It consults Catalogo for product
// validity and stock, and emits an Auditoria event on every successful add.
// Every operation is scoped to the usuario_id supplied by the caller; the
// service itself holds no session state.
type Carrito struct {
	DB        *gorm.DB
	Catalogo  *Catalogo
	Auditoria *Auditoria
}

// EventoMeta is the request metadata attached to the audit event of an add.
type EventoMeta struct {
	IPAddress string
	UserAgent string
}

// GetCart returns the user's cart lines joined with product display fields,
// most recently added first. Lines whose product was soft-deleted are
// filtered out by the join.
func (s *Carrito) GetCart(usuarioID uuid.UUID) ([]models.LineaCarrito, error) {
	lineas := []models.LineaCarrito{}
	err := s.DB.Table("carrito").
		Select("carrito.id AS carrito_id, carrito.producto_id, carrito.cantidad, carrito.added_at, "+
			"productos.nombre, productos.precio, productos.imagen_url, productos.categoria").
		Joins("JOIN productos ON productos.id = carrito.producto_id").
		Where("carrito.usuario_id = ? AND productos.is_active = ?", usuarioID, true).
		Order("carrito.added_at DESC").
		Scan(&lineas).Error
	if err != nil {
		return nil, fmt.Errorf("consultar carrito: %w", err)
	}
	return lineas, nil
}

// AddItem puts cantidad units of a product into the user's cart and returns
// the product snapshot. A second add for the same (usuario, producto) pair
// merges into the existing line via a single upsert-with-increment statement,
// so concurrent adds cannot lose each other's increment. added_at is only
// written on first insertion.
//
// Stock is checked but NOT decremented here: consumption belongs to a future
// checkout step, so concurrent shoppers may still hold the same last unit in
// their carts.
func (s *Carrito) AddItem(usuarioID, productoID uuid.UUID, cantidad int, meta EventoMeta) (*models.Producto, error) {
	if cantidad < 1 {
		return nil, ErrCantidadInvalida
	}

	producto, err := s.Catalogo.GetAnyByID(productoID)
	if err != nil {
		return nil, err
	}
	if !producto.IsActive || producto.Stock <= 0 {
		return nil, ErrProductoNoDisponible
	}

	item := models.ItemCarrito{
		ID:         uuid.New(),
		UsuarioID:  usuarioID,
		ProductoID: productoID,
		Cantidad:   cantidad,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "usuario_id"}, {Name: "producto_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cantidad": gorm.Expr("carrito.cantidad + excluded.cantidad"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("agregar al carrito: %w", err)
	}

	// Fire-and-forget: a failed audit write never fails the add.
	_, err = s.Auditoria.RecordEvent(models.AccessLog{
		UsuarioID: &usuarioID,
		EventType: "access",
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Browser:   "Agregar al carrito",
	})
	if err != nil {
		log.Warn().Err(err).Str("usuario_id", usuarioID.String()).Msg("no se pudo registrar el evento de carrito")
	}

	return producto, nil
}

// UpdateQuantity replaces the cantidad of a cart line. The line must match
// both the item id and the acting user; added_at is left untouched.
func (s *Carrito) UpdateQuantity(usuarioID, itemID uuid.UUID, cantidad int) error {
	if cantidad < 1 {
		return ErrCantidadInvalida
	}

	result := s.DB.Model(&models.ItemCarrito{}).
		Where("id = ? AND usuario_id = ?", itemID, usuarioID).
		Update("cantidad", cantidad)
	if result.Error != nil {
		return fmt.Errorf("actualizar cantidad: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

// RemoveItem deletes the cart line matching both the item id and the user.
func (s *Carrito) RemoveItem(usuarioID, itemID uuid.UUID) error {
	result := s.DB.Where("id = ? AND usuario_id = ?", itemID, usuarioID).
		Delete(&models.ItemCarrito{})
	if result.Error != nil {
		return fmt.Errorf("eliminar del carrito: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

// ClearCart removes every line of the user's cart. Clearing an already-empty
// cart is a successful no-op.
func (s *Carrito) ClearCart(usuarioID uuid.UUID) error {
	err := s.DB.Where("usuario_id = ?", usuarioID).
		Delete(&models.ItemCarrito{}).Error
	if err != nil {
		return fmt.Errorf("vaciar carrito: %w", err)
	}
	return nil
}
