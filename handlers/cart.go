package handlers

import (
	"errors"
	"net/http"

	"buenlibro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	Carrito *services.Carrito
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("usuario_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

func (h *CartHandler) GetCart(c *gin.Context) {
	usuarioID, ok := currentUserID(c)
	if !ok {
		return
	}

	lineas, err := h.Carrito.GetCart(usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, lineas)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	usuarioID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ProductoID uuid.UUID `json:"producto_id" binding:"required"`
		Cantidad   *int      `json:"cantidad"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cantidad := 1
	if req.Cantidad != nil {
		cantidad = *req.Cantidad
	}

	meta := services.EventoMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	producto, err := h.Carrito.AddItem(usuarioID, req.ProductoID, cantidad, meta)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCantidadInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductoNoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		case errors.Is(err, services.ErrProductoNoDisponible):
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no disponible"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Producto agregado al carrito",
		"producto": producto,
	})
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	usuarioID, ok := currentUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item no encontrado en el carrito"})
		return
	}

	var req struct {
		Cantidad *int `json:"cantidad" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Carrito.UpdateQuantity(usuarioID, itemID, *req.Cantidad); err != nil {
		switch {
		case errors.Is(err, services.ErrCantidadInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrItemNoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item no encontrado en el carrito"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cantidad actualizada"})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	usuarioID, ok := currentUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item no encontrado en el carrito"})
		return
	}

	if err := h.Carrito.RemoveItem(usuarioID, itemID); err != nil {
		if errors.Is(err, services.ErrItemNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item no encontrado en el carrito"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto eliminado del carrito"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	usuarioID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Carrito.ClearCart(usuarioID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrito vaciado"})
}
