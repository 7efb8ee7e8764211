package procurement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

// RegisterPurchaseUseCase orquesta el asistente de registro de compras por
// sesión de operador: filtra necesidades del catálogo, administra la selección
// y el ledger, resuelve el proveedor y confirma la compra persistiendo el
// registro (y el proveedor nuevo, si lo hay) en una sola transacción.
type RegisterPurchaseUseCase struct {
	sessions     *Sessions
	needRepo     repository.NeedRepository
	supplierRepo repository.SupplierRepository
	txRunner     TxRunner
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(
	sessions *Sessions,
	needRepo repository.NeedRepository,
	supplierRepo repository.SupplierRepository,
	txRunner TxRunner,
) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{
		sessions:     sessions,
		needRepo:     needRepo,
		supplierRepo: supplierRepo,
		txRunner:     txRunner,
	}
}

// StartSession arranca un asistente fresco para el operador (descarta el previo).
func (uc *RegisterPurchaseUseCase) StartSession(operatorID string) *Workflow {
	return uc.sessions.Start(operatorID)
}

// Session devuelve el asistente del operador (lo crea en etapa 1 si no hay).
func (uc *RegisterPurchaseUseCase) Session(operatorID string) *Workflow {
	return uc.sessions.Get(operatorID)
}

// ListNeeds lista el catálogo aplicando los filtros y el orden pedidos.
func (uc *RegisterPurchaseUseCase) ListNeeds(criteria Criteria) ([]entity.Need, error) {
	all, err := uc.needRepo.List()
	if err != nil {
		return nil, err
	}
	return FilteredNeeds(all, criteria), nil
}

// ToggleNeed selecciona o deselecciona una necesidad por id.
func (uc *RegisterPurchaseUseCase) ToggleNeed(operatorID string, needID int64, selected bool) error {
	need, err := uc.needRepo.GetByID(needID)
	if err != nil {
		return err
	}
	if need == nil {
		return domain.ErrNotFound
	}
	uc.sessions.Get(operatorID).Selection().Toggle(*need, selected)
	return nil
}

// SelectAllFiltered aplica el checkbox "seleccionar todo" sobre el resultado
// visible del filtro actual.
func (uc *RegisterPurchaseUseCase) SelectAllFiltered(operatorID string, criteria Criteria, checked bool) error {
	filtered, err := uc.ListNeeds(criteria)
	if err != nil {
		return err
	}
	uc.sessions.Get(operatorID).Selection().SelectAllFiltered(filtered, checked)
	return nil
}

// EditItem aplica una edición de cantidad o subtotal sobre un renglón.
func (uc *RegisterPurchaseUseCase) EditItem(operatorID string, needID int64, field EditField, value decimal.Decimal) error {
	return uc.sessions.Get(operatorID).Ledger().ApplyEdit(needID, field, value)
}

// ResolveSupplier fija un proveedor existente del directorio como proveedor de
// la compra. Solo se aceptan proveedores activos.
func (uc *RegisterPurchaseUseCase) ResolveSupplier(operatorID string, supplierID int64) error {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.Status != entity.SupplierActive {
		return domain.ErrInvalidInput
	}
	uc.sessions.Get(operatorID).ResolveExistingSupplier(*supplier)
	return nil
}

// ResolveNewSupplier valida y crea en memoria un proveedor nuevo para la
// compra; se persiste recién al confirmar.
func (uc *RegisterPurchaseUseCase) ResolveNewSupplier(operatorID string, candidate SupplierCandidate) error {
	existing, err := uc.supplierRepo.List()
	if err != nil {
		return err
	}
	return uc.sessions.Get(operatorID).ResolveNewSupplier(candidate, existing)
}

// SearchSuppliers busca proveedores activos por nombre o CUIT.
func (uc *RegisterPurchaseUseCase) SearchSuppliers(query string) ([]entity.Supplier, error) {
	suppliers, err := uc.supplierRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return Search(query, suppliers), nil
}

// SetGeneral carga los datos generales de la compra en la sesión.
func (uc *RegisterPurchaseUseCase) SetGeneral(operatorID string, general entity.GeneralData) error {
	return uc.sessions.Get(operatorID).SetGeneral(general)
}

// Advance, Back y Abort delegan en la máquina de estados de la sesión.
func (uc *RegisterPurchaseUseCase) Advance(operatorID string) error {
	return uc.sessions.Get(operatorID).Advance()
}

func (uc *RegisterPurchaseUseCase) Back(operatorID string) error {
	return uc.sessions.Get(operatorID).Back()
}

func (uc *RegisterPurchaseUseCase) Abort(operatorID string) error {
	return uc.sessions.Get(operatorID).Abort()
}

// Confirm cierra el asistente: revalida las guardas, arma el PurchaseRecord y
// lo persiste junto con el proveedor nuevo (si lo hay) en una transacción.
// Si la persistencia falla se reabre la confirmación sin perder lo cargado.
func (uc *RegisterPurchaseUseCase) Confirm(ctx context.Context, operatorID string) (*entity.PurchaseRecord, error) {
	w := uc.sessions.Get(operatorID)
	record, err := w.Commit(operatorID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if w.SupplierIsNew() {
			supplier := record.Supplier
			if err := supplierRepo.Append(&supplier); err != nil {
				return err
			}
		}
		return purchaseRepo.Create(record)
	})
	if err != nil {
		w.ReopenConfirmation()
		return nil, err
	}
	return record, nil
}
