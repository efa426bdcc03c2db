package handlers

import (
	"errors"
	"net/http"

	"buenlibro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Catalogo *services.Catalogo
}

// GetProductos lists the public catalog: active products only, in insertion
// order.
func (h *ProductHandler) GetProductos(c *gin.Context) {
	productos, err := h.Catalogo.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, productos)
}

// GetAllProductos is the admin listing and includes soft-deleted rows.
func (h *ProductHandler) GetAllProductos(c *gin.Context) {
	productos, err := h.Catalogo.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, productos)
}

func (h *ProductHandler) GetProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		return
	}

	producto, err := h.Catalogo.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductoNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *ProductHandler) GetProductosPorCategoria(c *gin.Context) {
	productos, err := h.Catalogo.GetByCategoria(c.Param("categoria"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, productos)
}

func (h *ProductHandler) CreateProducto(c *gin.Context) {
	var input services.ProductoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	producto, err := h.Catalogo.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusCreated, producto)
}

func (h *ProductHandler) UpdateProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		return
	}

	var input services.ProductoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Catalogo.Update(id, input); err != nil {
		if errors.Is(err, services.ErrProductoNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto actualizado"})
}

// DeleteProducto performs the logical delete. Deleting an already-inactive
// product is still a success.
func (h *ProductHandler) DeleteProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		return
	}

	if err := h.Catalogo.SoftDelete(id); err != nil {
		if errors.Is(err, services.ErrProductoNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto eliminado"})
}
