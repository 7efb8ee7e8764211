package procurement

import (
	"context"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de la compra dentro de una transacción de BD,
// pasando repositorios atados a esa tx: alta del proveedor nuevo (si lo hay)
// e inserción del registro de compra, atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
