package dto

import "github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"

// CreateSupplierRequest alta de proveedor (desde el directorio o el asistente).
type CreateSupplierRequest struct {
	TaxID   string `json:"tax_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"id"`
	TaxID   string `json:"tax_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// ToSupplierResponse mapea la entidad.
func ToSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID,
		TaxID:   s.TaxID,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
		Status:  string(s.Status),
	}
}
