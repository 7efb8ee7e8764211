package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectedItem una necesidad elegida para la compra en curso, enriquecida con
// cantidad comprada, precio unitario y subtotal. Los tres campos arrancan sin
// cargar (nil) y se completan en la etapa de cantidades y precios.
// Invariante: Subtotal == PurchasedQuantity * UnitPrice cuando ambos operandos
// están definidos (ver reglas de derivación del Ledger).
type SelectedItem struct {
	NeedID            int64
	ProductName       string
	Category          string
	Area              string
	Priority          Priority
	RequestedQuantity decimal.Decimal
	Unit              string

	PurchasedQuantity *decimal.Decimal
	UnitPrice         *decimal.Decimal
	Subtotal          *decimal.Decimal
}

// Complete indica si el renglón tiene cantidad y precio cargados (y por lo
// tanto subtotal derivado).
func (i SelectedItem) Complete() bool {
	return i.PurchasedQuantity != nil && i.UnitPrice != nil && i.Subtotal != nil
}

// PurchaseStatus estado de recepción de la compra.
type PurchaseStatus string

const (
	PurchaseReceived PurchaseStatus = "received"
	PurchasePending  PurchaseStatus = "pending"
)

// GeneralData datos generales de la compra (etapa 3 del asistente).
// Las fechas se guardan como las carga el formulario (YYYY-MM-DD / HH:MM).
type GeneralData struct {
	SellerLabel           string
	PurchaseDate          string
	PurchaseTime          string
	Status                PurchaseStatus
	EstimatedDeliveryDate string // obligatoria solo si Status es pending
	ReceiptReference      string // handle opaco del colaborador de comprobantes
}

// PurchaseRecord compra confirmada. Se crea una única vez al confirmar el
// asistente y es inmutable desde entonces; la consume el historial de compras.
type PurchaseRecord struct {
	ID        string
	Items     []SelectedItem // todos con cantidad/precio/subtotal resueltos
	Supplier  Supplier
	General   GeneralData
	Total     decimal.Decimal // Σ subtotales
	CreatedAt time.Time
	CreatedBy string
}
