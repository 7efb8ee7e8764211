package entity

import "time"

// SupplierStatus estado de un proveedor en el directorio.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// Supplier proveedor identificado por CUIT (DD-DDDDDDDD-D), único en todo el
// directorio incluyendo inactivos. Puede venir precargado o crearse durante el
// registro de una compra (en ese caso nace activo).
type Supplier struct {
	ID        int64
	TaxID     string // CUIT con formato DD-DDDDDDDD-D
	Name      string
	Phone     string
	Address   string
	Status    SupplierStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
