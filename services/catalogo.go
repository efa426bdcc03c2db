package services

import (
	"errors"
	"fmt"

	"buenlibro-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalogo owns product records and the soft-delete visibility rules. Every
// read path that feeds shoppers (listings, product page, cart joins) filters
// is_active = TRUE; only the admin variants see inactive rows.
type Catalogo struct {
	DB *gorm.DB
}

// ProductoInput carries the mutable fields of a product. Stock defaults to 0
// when omitted, matching the original schema default.
type ProductoInput struct {
	Nombre      string          `json:"nombre" binding:"required"`
	Precio      decimal.Decimal `json:"precio" binding:"required"`
	Categoria   string          `json:"categoria" binding:"required"`
	Descripcion string          `json:"descripcion"`
	ImagenURL   string          `json:"imagen_url"`
	Stock       *int            `json:"stock"`
}

// List returns products in insertion order. With activeOnly, soft-deleted
// rows are excluded.
func (s *Catalogo) List(activeOnly bool) ([]models.Producto, error) {
	var productos []models.Producto
	query := s.DB.Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&productos).Error; err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return productos, nil
}

// GetByID returns an active product. Soft-deleted rows behave as missing.
func (s *Catalogo) GetByID(id uuid.UUID) (*models.Producto, error) {
	var producto models.Producto
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&producto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return &producto, nil
}

// GetAnyByID returns the raw record regardless of is_active. Used by admin
// edit screens and by cart-add validation, which needs to tell a missing
// product apart from an unavailable one.
func (s *Catalogo) GetAnyByID(id uuid.UUID) (*models.Producto, error) {
	var producto models.Producto
	err := s.DB.Where("id = ?", id).First(&producto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return &producto, nil
}

// GetByCategoria returns active products whose categoria matches exactly.
func (s *Catalogo) GetByCategoria(categoria string) ([]models.Producto, error) {
	var productos []models.Producto
	err := s.DB.Where("categoria = ? AND is_active = ?", categoria, true).
		Order("created_at ASC").
		Find(&productos).Error
	if err != nil {
		return nil, fmt.Errorf("listar productos por categoría: %w", err)
	}
	return productos, nil
}

// Create inserts a new active product and returns it with its assigned id.
func (s *Catalogo) Create(input ProductoInput) (*models.Producto, error) {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	producto := models.Producto{
		ID:          uuid.New(),
		Nombre:      input.Nombre,
		Precio:      input.Precio,
		Categoria:   input.Categoria,
		Descripcion: input.Descripcion,
		ImagenURL:   input.ImagenURL,
		Stock:       stock,
		IsActive:    true,
	}

	if err := s.DB.Create(&producto).Error; err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return &producto, nil
}

// Update replaces the mutable fields of an active product in a single
// statement. A soft-deleted or missing id reports ErrProductoNoEncontrado.
func (s *Catalogo) Update(id uuid.UUID, input ProductoInput) error {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	result := s.DB.Model(&models.Producto{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"nombre":      input.Nombre,
			"precio":      input.Precio,
			"categoria":   input.Categoria,
			"descripcion": input.Descripcion,
			"imagen_url":  input.ImagenURL,
			"stock":       stock,
		})
	if result.Error != nil {
		return fmt.Errorf("actualizar producto: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// SoftDelete marks a product inactive. Re-deleting an already-inactive
// product succeeds; only an id that never existed is an error.
func (s *Catalogo) SoftDelete(id uuid.UUID) error {
	result := s.DB.Model(&models.Producto{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("eliminar producto: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}
