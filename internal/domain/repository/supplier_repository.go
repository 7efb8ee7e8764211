package repository

import "github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia del directorio de
// proveedores. Desde el asistente de compras es lectura casi siempre: el único
// write es Append, un alta por compra cuando el proveedor se crea en la sesión.
type SupplierRepository interface {
	List() ([]entity.Supplier, error)
	ListActive() ([]entity.Supplier, error)
	GetByID(id int64) (*entity.Supplier, error)
	Append(supplier *entity.Supplier) error
}
