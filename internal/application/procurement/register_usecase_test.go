package procurement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type fakeNeedRepo struct{ needs []entity.Need }

func (r *fakeNeedRepo) List() ([]entity.Need, error) { return r.needs, nil }
func (r *fakeNeedRepo) GetByID(id int64) (*entity.Need, error) {
	for _, n := range r.needs {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, nil
}

type fakeSupplierRepo struct{ suppliers []entity.Supplier }

func (r *fakeSupplierRepo) List() ([]entity.Supplier, error) { return r.suppliers, nil }
func (r *fakeSupplierRepo) ListActive() ([]entity.Supplier, error) {
	out := make([]entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if s.Status == entity.SupplierActive {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}
func (r *fakeSupplierRepo) Append(s *entity.Supplier) error {
	r.suppliers = append(r.suppliers, *s)
	return nil
}

type fakePurchaseRepo struct{ created []*entity.PurchaseRecord }

func (r *fakePurchaseRepo) Create(rec *entity.PurchaseRecord) error {
	r.created = append(r.created, rec)
	return nil
}
func (r *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	for _, rec := range r.created {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}
func (r *fakePurchaseRepo) List(limit, offset int) ([]*entity.PurchaseRecord, error) {
	return r.created, nil
}

// fakeTxRunner pasa los mismos fakes como repos "atados a la transacción";
// con failWith simula una transacción que hace rollback.
type fakeTxRunner struct {
	supplierRepo *fakeSupplierRepo
	purchaseRepo *fakePurchaseRepo
	failWith     error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.SupplierRepository, repository.PurchaseRepository) error) error {
	if r.failWith != nil {
		return r.failWith
	}
	return fn(r.supplierRepo, r.purchaseRepo)
}

func armarUseCase(t *testing.T) (*procurement.RegisterPurchaseUseCase, *fakeSupplierRepo, *fakePurchaseRepo, *fakeTxRunner) {
	t.Helper()
	needRepo := &fakeNeedRepo{needs: necesidadesDePrueba()}
	supplierRepo := &fakeSupplierRepo{suppliers: directorioDePrueba()}
	purchaseRepo := &fakePurchaseRepo{}
	tx := &fakeTxRunner{supplierRepo: supplierRepo, purchaseRepo: purchaseRepo}
	uc := procurement.NewRegisterPurchaseUseCase(procurement.NewSessions(), needRepo, supplierRepo, tx)
	return uc, supplierRepo, purchaseRepo, tx
}

const operador = "op-1"

func sesionLista(t *testing.T, uc *procurement.RegisterPurchaseUseCase) {
	t.Helper()
	uc.StartSession(operador)
	require.NoError(t, uc.ToggleNeed(operador, 1, true))
	require.NoError(t, uc.Advance(operador))
	require.NoError(t, uc.EditItem(operador, 1, procurement.EditQuantity, decimal.NewFromInt(50)))
	require.NoError(t, uc.EditItem(operador, 1, procurement.EditSubtotal, decimal.NewFromInt(5000)))
	require.NoError(t, uc.Advance(operador))
	require.NoError(t, uc.SetGeneral(operador, entity.GeneralData{PurchaseDate: "2024-05-01", Status: entity.PurchaseReceived}))
}

func TestConfirm_PersisteCompraYProveedorNuevoEnUnaTx(t *testing.T) {
	uc, supplierRepo, purchaseRepo, _ := armarUseCase(t)
	sesionLista(t, uc)
	require.NoError(t, uc.ResolveNewSupplier(operador, procurement.SupplierCandidate{
		TaxID: "30-12345678-1", Name: "Acme", Phone: "011-1234-5678", Address: "Corrientes 800",
	}))
	require.NoError(t, uc.Advance(operador))

	record, err := uc.Confirm(context.Background(), operador)
	require.NoError(t, err)

	require.Len(t, purchaseRepo.created, 1, "exactamente un registro de compra")
	assert.True(t, record.Total.Equal(decimal.NewFromInt(5000)))
	assert.Len(t, supplierRepo.suppliers, 4, "el proveedor nuevo se agregó al directorio")
	assert.Equal(t, int64(6), record.Supplier.ID, "id = max(1,2,5)+1")
}

func TestConfirm_ProveedorExistenteNoSeDuplica(t *testing.T) {
	uc, supplierRepo, purchaseRepo, _ := armarUseCase(t)
	sesionLista(t, uc)
	require.NoError(t, uc.ResolveSupplier(operador, 1))
	require.NoError(t, uc.Advance(operador))

	_, err := uc.Confirm(context.Background(), operador)
	require.NoError(t, err)
	assert.Len(t, supplierRepo.suppliers, 3, "no hay alta si el proveedor ya existía")
	assert.Len(t, purchaseRepo.created, 1)
}

func TestConfirm_FallaDePersistenciaReabreConfirmacion(t *testing.T) {
	uc, _, purchaseRepo, tx := armarUseCase(t)
	sesionLista(t, uc)
	require.NoError(t, uc.ResolveSupplier(operador, 1))
	require.NoError(t, uc.Advance(operador))

	tx.failWith = errors.New("conexión perdida")
	_, err := uc.Confirm(context.Background(), operador)
	require.Error(t, err)
	assert.Empty(t, purchaseRepo.created)
	assert.Equal(t, procurement.StageConfirming, uc.Session(operador).Stage(),
		"la sesión vuelve a confirmación para reintentar sin perder datos")

	// reintento con la transacción sana
	tx.failWith = nil
	_, err = uc.Confirm(context.Background(), operador)
	assert.NoError(t, err)
	assert.Len(t, purchaseRepo.created, 1)
}

func TestResolveSupplier_InactivoRechazado(t *testing.T) {
	uc, _, _, _ := armarUseCase(t)
	uc.StartSession(operador)
	err := uc.ResolveSupplier(operador, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo proveedores activos pueden resolver una compra")
}

func TestToggleNeed_Inexistente(t *testing.T) {
	uc, _, _, _ := armarUseCase(t)
	uc.StartSession(operador)
	assert.ErrorIs(t, uc.ToggleNeed(operador, 999, true), domain.ErrNotFound)
}

func TestSelectAllFiltered_UsaElFiltroActual(t *testing.T) {
	uc, _, _, _ := armarUseCase(t)
	uc.StartSession(operador)

	require.NoError(t, uc.SelectAllFiltered(operador, procurement.Criteria{Category: "Medicamentos"}, true))
	assert.Equal(t, 2, uc.Session(operador).Selection().Len(), "solo Paracetamol e Ibuprofeno")

	require.NoError(t, uc.SelectAllFiltered(operador, procurement.Criteria{Category: "Medicamentos"}, false))
	assert.Equal(t, 0, uc.Session(operador).Selection().Len())
}

func TestAbort_LuegoLaSesionArrancaVacia(t *testing.T) {
	uc, _, _, _ := armarUseCase(t)
	sesionLista(t, uc)
	require.NoError(t, uc.Abort(operador))

	w := uc.Session(operador)
	assert.Equal(t, procurement.StageSelectingNeeds, w.Stage())
	assert.Equal(t, 0, w.Selection().Len())
}
