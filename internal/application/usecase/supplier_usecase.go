package usecase

import (
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/dto"
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

// SupplierUseCase casos de uso del directorio de proveedores: listado,
// búsqueda y alta directa (fuera del asistente de compras). El alta aplica las
// mismas reglas de validación y asignación de id que el asistente.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List lista el directorio completo (activos e inactivos).
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// Search busca proveedores activos por nombre o CUIT.
func (uc *SupplierUseCase) Search(query string) ([]dto.SupplierResponse, error) {
	active, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	found := procurement.Search(query, active)
	out := make([]dto.SupplierResponse, 0, len(found))
	for _, s := range found {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// Create valida y da de alta un proveedor en el directorio.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	candidate := procurement.SupplierCandidate{
		TaxID:   in.TaxID,
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := procurement.ValidateNew(candidate, existing, 0); err != nil {
		return nil, err
	}
	supplier := procurement.Create(candidate, existing)
	if err := uc.repo.Append(&supplier); err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}
