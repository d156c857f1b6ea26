package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/application/usecase"
	"github.com/antoniotech/pos-api/internal/domain"
	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// CartHandler maneja las peticiones del carrito de la terminal.
type CartHandler struct {
	cart *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(cart *usecase.CartUseCase) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get devuelve el estado actual del carrito con el desglose de IVA.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cart.Snapshot())
}

// AddItem agrega un producto. Para granel sin cantidad responde 422 con el
// código QUANTITY_REQUIRED: la terminal debe pedir el peso y reintentar (el
// alta en dos pasos).
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
	}
	if err := h.cart.AddItem(in.ProductID, in.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrQuantityRequired):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "QUANTITY_REQUIRED", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(h.cart.Snapshot())
}

// UpdateQuantity ajusta la línea en ±1 paso. Línea inexistente es no-op.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Direction == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser +1 o -1"})
	}
	h.cart.UpdateQuantity(productID, in.Direction)
	return c.JSON(h.cart.Snapshot())
}

// RemoveItem elimina la línea incondicionalmente.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.cart.RemoveItem(c.Params("productId"))
	return c.JSON(h.cart.Snapshot())
}

// Checkout cierra la venta. La compuerta de efectivo (lo recibido debe cubrir
// el total) vive dentro del motor del carrito, bajo su mutex; aquí solo se
// traduce a 422.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paymentMethod debe ser cash, card o credit"})
	}
	sale, err := h.cart.Checkout(method, in.AmountReceived)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: domain.ErrEmptyCart.Error()})
		case errors.Is(err, domain.ErrInsufficientPayment):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_PAYMENT", Message: domain.ErrInsufficientPayment.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
