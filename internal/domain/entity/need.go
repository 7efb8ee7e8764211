package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Priority prioridad de una necesidad de reposición.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaja  Priority = "baja"
)

// Rank devuelve el peso numérico de la prioridad para ordenar
// (alta:3, media:2, baja:1; desconocida:0).
func (p Priority) Rank() int {
	switch p {
	case PriorityAlta:
		return 3
	case PriorityMedia:
		return 2
	case PriorityBaja:
		return 1
	}
	return 0
}

// Need necesidad de reposición pendiente de un producto o medicamento.
// Inmutable: es propiedad del catálogo de necesidades y el asistente de
// compras solo la lee.
type Need struct {
	ID                int64
	ProductName       string
	RequestedQuantity decimal.Decimal // cantidad solicitada, siempre positiva
	Unit              string          // "kg", "uds", etc.
	Category          string
	Area              string
	Priority          Priority
	RequestDate       time.Time
}
