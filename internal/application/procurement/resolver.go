package procurement

import (
	"strings"
	"time"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/pkg/cuit"
)

// SupplierCandidate datos del formulario de alta de proveedor.
type SupplierCandidate struct {
	TaxID   string
	Name    string
	Phone   string
	Address string
}

// ValidateTaxID verifica el formato CUIT DD-DDDDDDDD-D.
func ValidateTaxID(taxID string) bool {
	return cuit.IsValid(taxID)
}

// ValidateNew valida el alta (o edición) de un proveedor contra el directorio
// COMPLETO, activos e inactivos: el CUIT es único globalmente. El CUIT se
// normaliza antes de validar formato y duplicados, así "30-12345678-1" y
// " 30 - 12345678 - 1" cuentan como el mismo. excludingID distinto de cero
// excluye al propio proveedor cuando se está editando.
func ValidateNew(candidate SupplierCandidate, existing []entity.Supplier, excludingID int64) error {
	if strings.TrimSpace(candidate.TaxID) == "" ||
		strings.TrimSpace(candidate.Name) == "" ||
		strings.TrimSpace(candidate.Phone) == "" ||
		strings.TrimSpace(candidate.Address) == "" {
		return domain.ErrMissingRequiredField
	}
	taxID := cuit.Normalize(candidate.TaxID)
	if !cuit.IsValid(taxID) {
		return domain.ErrInvalidTaxIDFormat
	}
	for _, s := range existing {
		if s.ID != excludingID && s.TaxID == taxID {
			return domain.ErrDuplicateTaxID
		}
	}
	return nil
}

// Create arma el proveedor nuevo a partir del candidato ya validado:
// id = max(ids existentes, 0) + 1, estado activo, CUIT normalizado.
func Create(candidate SupplierCandidate, existing []entity.Supplier) entity.Supplier {
	var maxID int64
	for _, s := range existing {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	now := time.Now()
	return entity.Supplier{
		ID:        maxID + 1,
		TaxID:     cuit.Normalize(candidate.TaxID),
		Name:      candidate.Name,
		Phone:     candidate.Phone,
		Address:   candidate.Address,
		Status:    entity.SupplierActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Search busca proveedores para resolver la compra: solo activos, por
// substring case-insensitive del nombre o substring cruda del CUIT.
func Search(query string, suppliers []entity.Supplier) []entity.Supplier {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)

	out := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if s.Status != entity.SupplierActive {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(s.Name), lower) || strings.Contains(s.TaxID, q) {
			out = append(out, s)
		}
	}
	return out
}
