package usecase

import (
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/dto"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

// PurchaseUseCase lado de lectura del historial de compras confirmadas.
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo}
}

// List lista compras confirmadas con paginación.
func (uc *PurchaseUseCase) List(limit, offset int) ([]*dto.PurchaseResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	records, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ToPurchaseResponse(r))
	}
	return out, nil
}

// GetByID devuelve una compra confirmada por id.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToPurchaseResponse(record), nil
}
