package repository

import "github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"

// PurchaseRepository define el puerto del historial de compras.
// Create se invoca exactamente una vez por registro confirmado.
type PurchaseRepository interface {
	Create(record *entity.PurchaseRecord) error
	GetByID(id string) (*entity.PurchaseRecord, error)
	List(limit, offset int) ([]*entity.PurchaseRecord, error)
}
