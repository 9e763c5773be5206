package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// InvalidOperationError operación rechazada por estado o parámetros del caller
// (traslado a la misma bodega, bodega inactiva, merge con volumen unitario distinto).
// Nunca se reintenta automáticamente.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "operación inválida: " + e.Reason
}

// InsufficientStockError la cantidad solicitada supera el stock disponible.
// Incluye disponible y solicitado para feedback al usuario.
type InsufficientStockError struct {
	SKU       string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d", e.SKU, e.Available, e.Requested)
}

// CapacityExceededError la bodega destino no tiene capacidad volumétrica libre para recibir el volumen solicitado.
type CapacityExceededError struct {
	WarehouseName string
	Available     decimal.Decimal // capacidad libre en unidades de volumen
	Requested     decimal.Decimal // volumen solicitado
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacidad excedida en bodega %s: disponible %s, solicitado %s",
		e.WarehouseName, e.Available.String(), e.Requested.String())
}
