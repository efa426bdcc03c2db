package services

import "errors"

// Errores de dominio. Handlers translate these to HTTP status codes; anything
// else coming out of a service is a storage fault and maps to 500.
var (
	// ErrProductoNoEncontrado: the referenced product id does not exist, or is
	// not visible under the soft-delete filter of the operation.
	ErrProductoNoEncontrado = errors.New("producto no encontrado")

	// ErrProductoNoDisponible: the product exists but fails a business
	// precondition (inactive or out of stock).
	ErrProductoNoDisponible = errors.New("producto no disponible")

	// ErrItemNoEncontrado: no cart line matches both the item id and the
	// acting user (ownership is the composite match, never the id alone).
	ErrItemNoEncontrado = errors.New("item no encontrado en el carrito")

	// ErrCantidadInvalida: cantidad below 1.
	ErrCantidadInvalida = errors.New("la cantidad debe ser al menos 1")
)
