package repository

import "github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"

// NeedRepository define el puerto de lectura del catálogo de necesidades.
// El asistente de compras nunca escribe necesidades.
type NeedRepository interface {
	List() ([]entity.Need, error)
	GetByID(id int64) (*entity.Need, error)
}
