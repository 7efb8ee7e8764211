package procurement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

func TestAdvance_SeleccionVaciaRechazada(t *testing.T) {
	w := procurement.NewWorkflow()
	err := w.Advance()
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.Equal(t, procurement.StageSelectingNeeds, w.Stage(), "la etapa no avanza ante violación")
}

func TestAdvance_ItemsIncompletosRechazados(t *testing.T) {
	w := procurement.NewWorkflow()
	w.Selection().Add(necesidadesDePrueba()[0])
	require.NoError(t, w.Advance())

	err := w.Advance()
	assert.ErrorIs(t, err, domain.ErrIncompleteLineItem)
	assert.Equal(t, procurement.StageQuantitiesAndPrices, w.Stage())

	// con solo la cantidad cargada sigue incompleto (falta el precio)
	require.NoError(t, w.Ledger().ApplyEdit(1, procurement.EditQuantity, decimal.NewFromInt(3)))
	assert.ErrorIs(t, w.Advance(), domain.ErrIncompleteLineItem)
}

func TestAdvance_SinProveedorODataRechazado(t *testing.T) {
	w := workflowEnDatosGenerales(t)

	assert.ErrorIs(t, w.Advance(), domain.ErrMissingSupplierOrDate)

	// proveedor sin fecha tampoco alcanza
	w.ResolveExistingSupplier(directorioDePrueba()[0])
	assert.ErrorIs(t, w.Advance(), domain.ErrMissingSupplierOrDate)

	require.NoError(t, w.SetGeneral(entity.GeneralData{PurchaseDate: "2024-05-01", Status: entity.PurchaseReceived}))
	assert.NoError(t, w.Advance())
	assert.Equal(t, procurement.StageConfirming, w.Stage())
}

func TestSetGeneral_PendienteExigeFechaEstimada(t *testing.T) {
	w := procurement.NewWorkflow()
	err := w.SetGeneral(entity.GeneralData{PurchaseDate: "2024-05-01", Status: entity.PurchasePending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.NoError(t, w.SetGeneral(entity.GeneralData{
		PurchaseDate:          "2024-05-01",
		Status:                entity.PurchasePending,
		EstimatedDeliveryDate: "2024-05-10",
	}))
}

func TestBack_SiemprePermitidoYConservaDatos(t *testing.T) {
	w := workflowEnDatosGenerales(t)

	require.NoError(t, w.Back())
	assert.Equal(t, procurement.StageQuantitiesAndPrices, w.Stage())
	item := w.Selection().Get(1)
	require.NotNil(t, item)
	assert.True(t, item.Complete(), "retroceder no borra cantidades ni precios")

	require.NoError(t, w.Back())
	assert.Equal(t, procurement.StageSelectingNeeds, w.Stage())
	assert.ErrorIs(t, w.Back(), domain.ErrWorkflowStage, "desde la etapa 1 no hay retroceso")
}

func TestCommit_FueraDeConfirmacionRechazado(t *testing.T) {
	w := procurement.NewWorkflow()
	_, err := w.Commit("operador-1")
	assert.ErrorIs(t, err, domain.ErrWorkflowStage)
}

// TestCommit_EscenarioParacetamol escenario de referencia de punta a punta:
// seleccionar Paracetamol, cantidad 50, subtotal 5000 (deriva precio 100),
// proveedor Acme, fecha 2024-05-01 recibida, confirmar. Total 5000.
func TestCommit_EscenarioParacetamol(t *testing.T) {
	need := entity.Need{
		ID: 1, ProductName: "Paracetamol",
		RequestedQuantity: decimal.NewFromInt(50), Unit: "uds",
		Category: "Medicamentos", Area: "Enfermería", Priority: entity.PriorityAlta,
	}
	w := procurement.NewWorkflow()
	w.Selection().Toggle(need, true)
	require.NoError(t, w.Advance())

	require.NoError(t, w.Ledger().ApplyEdit(1, procurement.EditQuantity, decimal.NewFromInt(50)))
	require.NoError(t, w.Ledger().ApplyEdit(1, procurement.EditSubtotal, decimal.NewFromInt(5000)))
	require.NoError(t, w.Advance())

	require.NoError(t, w.ResolveNewSupplier(procurement.SupplierCandidate{
		TaxID: "30-12345678-1", Name: "Acme", Phone: "011-1234-5678", Address: "Corrientes 800",
	}, nil))
	require.NoError(t, w.SetGeneral(entity.GeneralData{
		PurchaseDate: "2024-05-01",
		PurchaseTime: "10:30",
		Status:       entity.PurchaseReceived,
	}))
	require.NoError(t, w.Advance())

	record, err := w.Commit("operador-1")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.Total.Equal(decimal.NewFromInt(5000)))
	require.Len(t, record.Items, 1)
	assert.True(t, record.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)), "5000/50 deriva precio 100")
	assert.Equal(t, entity.PurchaseReceived, record.General.Status)
	assert.Equal(t, "Acme", record.Supplier.Name)
	assert.Equal(t, procurement.StageCommitted, w.Stage())
	assert.True(t, w.SupplierIsNew())
}

func TestAbort_DescartaTodoDesdeCualquierEtapa(t *testing.T) {
	w := workflowEnDatosGenerales(t)
	w.ResolveExistingSupplier(directorioDePrueba()[0])
	require.NoError(t, w.SetGeneral(entity.GeneralData{PurchaseDate: "2024-05-01"}))

	require.NoError(t, w.Abort())

	assert.Equal(t, procurement.StageSelectingNeeds, w.Stage())
	assert.Equal(t, 0, w.Selection().Len(), "la selección queda vacía")
	assert.Nil(t, w.Supplier(), "el proveedor elegido se descarta")
	assert.Empty(t, w.General().PurchaseDate, "los datos generales se descartan")
}

func TestReset_DespuesDeConfirmarDejaAsistenteFresco(t *testing.T) {
	w := workflowConfirmable(t)
	_, err := w.Commit("operador-1")
	require.NoError(t, err)

	// una compra confirmada no se aborta: se resetea para el próximo registro
	assert.ErrorIs(t, w.Abort(), domain.ErrWorkflowStage)

	w.Reset()
	assert.Equal(t, procurement.StageSelectingNeeds, w.Stage())
	assert.Equal(t, 0, w.Selection().Len())
	assert.Nil(t, w.Record())
}

func TestReopenConfirmation_VuelveAConfirmarSinPerderDatos(t *testing.T) {
	w := workflowConfirmable(t)
	_, err := w.Commit("operador-1")
	require.NoError(t, err)

	w.ReopenConfirmation()

	assert.Equal(t, procurement.StageConfirming, w.Stage())
	assert.Nil(t, w.Record())
	assert.Equal(t, 1, w.Selection().Len(), "los renglones siguen cargados para reintentar")
}

// ── helpers ──────────────────────────────────────────────────────────────────

// workflowEnDatosGenerales deja un asistente en la etapa 3 con un ítem completo.
func workflowEnDatosGenerales(t *testing.T) *procurement.Workflow {
	t.Helper()
	w := procurement.NewWorkflow()
	w.Selection().Add(necesidadesDePrueba()[0])
	require.NoError(t, w.Advance())
	require.NoError(t, w.Ledger().ApplyEdit(1, procurement.EditQuantity, decimal.NewFromInt(10)))
	require.NoError(t, w.Ledger().ApplyEdit(1, procurement.EditSubtotal, decimal.NewFromInt(100)))
	require.NoError(t, w.Advance())
	return w
}

// workflowConfirmable deja un asistente en la etapa 4 listo para Commit.
func workflowConfirmable(t *testing.T) *procurement.Workflow {
	t.Helper()
	w := workflowEnDatosGenerales(t)
	w.ResolveExistingSupplier(directorioDePrueba()[0])
	require.NoError(t, w.SetGeneral(entity.GeneralData{PurchaseDate: "2024-05-01", Status: entity.PurchaseReceived}))
	require.NoError(t, w.Advance())
	return w
}
