package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrQuantityRequired    = errors.New("producto a granel: se requiere cantidad (peso)")
	ErrInsufficientPayment = errors.New("el efectivo recibido es menor al total")
)
