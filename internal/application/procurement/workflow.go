package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

// Stage etapa del asistente de registro de compras.
type Stage int

const (
	StageSelectingNeeds Stage = iota + 1
	StageQuantitiesAndPrices
	StageGeneralData
	StageConfirming
	StageCommitted // terminal; Reset deja el asistente listo para otro registro
)

// String nombre legible de la etapa (para respuestas y logs).
func (s Stage) String() string {
	switch s {
	case StageSelectingNeeds:
		return "seleccion_necesidades"
	case StageQuantitiesAndPrices:
		return "cantidades_precios"
	case StageGeneralData:
		return "datos_generales"
	case StageConfirming:
		return "confirmacion"
	case StageCommitted:
		return "confirmada"
	}
	return "desconocida"
}

// Workflow máquina de estados del registro de compras. Orquesta las cuatro
// etapas, aplica las guardas de avance y al confirmar arma el PurchaseRecord.
// No hace I/O: necesidades y proveedores entran ya resueltos desde el borde, y
// la persistencia del registro ocurre fuera, después de Commit.
//
// Las guardas devuelven errores de validación, nunca panics; ante violación la
// etapa no cambia y todo lo cargado se conserva.
type Workflow struct {
	stage       Stage
	selection   *SelectionSet
	ledger      *Ledger
	supplier    *entity.Supplier
	newSupplier bool // el proveedor se creó en esta sesión y falta persistirlo
	general     entity.GeneralData
	record      *entity.PurchaseRecord
}

// NewWorkflow construye un asistente en la etapa 1 con la selección vacía.
func NewWorkflow() *Workflow {
	selection := NewSelectionSet()
	return &Workflow{
		stage:     StageSelectingNeeds,
		selection: selection,
		ledger:    NewLedger(selection),
	}
}

// Stage etapa actual.
func (w *Workflow) Stage() Stage { return w.stage }

// Selection conjunto de necesidades seleccionadas.
func (w *Workflow) Selection() *SelectionSet { return w.selection }

// Ledger acceso al ledger de cantidades y precios de la sesión.
func (w *Workflow) Ledger() *Ledger { return w.ledger }

// Supplier proveedor resuelto, o nil si todavía no hay.
func (w *Workflow) Supplier() *entity.Supplier { return w.supplier }

// SupplierIsNew indica si el proveedor resuelto se creó en esta sesión.
func (w *Workflow) SupplierIsNew() bool { return w.newSupplier }

// General datos generales cargados hasta el momento.
func (w *Workflow) General() entity.GeneralData { return w.general }

// Record el registro confirmado, o nil si aún no se confirmó.
func (w *Workflow) Record() *entity.PurchaseRecord { return w.record }

// ResolveExistingSupplier fija un proveedor ya existente del directorio.
func (w *Workflow) ResolveExistingSupplier(s entity.Supplier) {
	sup := s
	w.supplier = &sup
	w.newSupplier = false
}

// ResolveNewSupplier valida el candidato contra el directorio, lo crea en
// memoria y lo deja como proveedor de la compra. Se persiste recién al
// confirmar, junto con el registro.
func (w *Workflow) ResolveNewSupplier(candidate SupplierCandidate, existing []entity.Supplier) error {
	if err := ValidateNew(candidate, existing, 0); err != nil {
		return err
	}
	s := Create(candidate, existing)
	w.supplier = &s
	w.newSupplier = true
	return nil
}

// SetGeneral carga los datos generales. Valida coherencia interna: estado
// conocido y fecha estimada de entrega presente si la compra queda pendiente.
func (w *Workflow) SetGeneral(g entity.GeneralData) error {
	switch g.Status {
	case "", entity.PurchaseReceived:
	case entity.PurchasePending:
		if strings.TrimSpace(g.EstimatedDeliveryDate) == "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	w.general = g
	return nil
}

// ── guardas de avance ────────────────────────────────────────────────────────

func (w *Workflow) guardSelection() error {
	if w.selection.Len() == 0 {
		return domain.ErrEmptySelection
	}
	return nil
}

func (w *Workflow) guardLineItems() error {
	for _, item := range w.selection.Items() {
		if item.PurchasedQuantity == nil || item.UnitPrice == nil {
			return domain.ErrIncompleteLineItem
		}
	}
	return nil
}

func (w *Workflow) guardSupplierAndDate() error {
	if w.supplier == nil || strings.TrimSpace(w.general.PurchaseDate) == "" {
		return domain.ErrMissingSupplierOrDate
	}
	return nil
}

// Advance valida la guarda de la etapa actual y avanza a la siguiente
// (1→2, 2→3, 3→4). La confirmación final (4→5) es Commit.
func (w *Workflow) Advance() error {
	switch w.stage {
	case StageSelectingNeeds:
		if err := w.guardSelection(); err != nil {
			return err
		}
	case StageQuantitiesAndPrices:
		if err := w.guardLineItems(); err != nil {
			return err
		}
	case StageGeneralData:
		if err := w.guardSupplierAndDate(); err != nil {
			return err
		}
	default:
		return domain.ErrWorkflowStage
	}
	w.stage++
	return nil
}

// Back retrocede una etapa sin revalidar; todo lo cargado se conserva.
// Solo válido desde las etapas 2 a 4.
func (w *Workflow) Back() error {
	if w.stage <= StageSelectingNeeds || w.stage >= StageCommitted {
		return domain.ErrWorkflowStage
	}
	w.stage--
	return nil
}

// Commit revalida las tres guardas, arma el PurchaseRecord con el total del
// ledger y pasa a Committed. Con las guardas satisfechas no puede fallar: el
// cálculo del total es total sobre subtotales ya definidos.
func (w *Workflow) Commit(createdBy string) (*entity.PurchaseRecord, error) {
	if w.stage != StageConfirming {
		return nil, domain.ErrWorkflowStage
	}
	if err := w.guardSelection(); err != nil {
		return nil, err
	}
	if err := w.guardLineItems(); err != nil {
		return nil, err
	}
	if err := w.guardSupplierAndDate(); err != nil {
		return nil, err
	}

	items := make([]entity.SelectedItem, 0, w.selection.Len())
	for _, item := range w.selection.Items() {
		items = append(items, *item)
	}
	record := &entity.PurchaseRecord{
		ID:        uuid.New().String(),
		Items:     items,
		Supplier:  *w.supplier,
		General:   w.general,
		Total:     w.ledger.Total(),
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	w.record = record
	w.stage = StageCommitted
	return record, nil
}

// ReopenConfirmation vuelve de Committed a la confirmación conservando los
// datos, para cuando la persistencia en el borde falla y hay que reintentar.
func (w *Workflow) ReopenConfirmation() {
	if w.stage == StageCommitted {
		w.stage = StageConfirming
		w.record = nil
	}
}

// Abort descarta incondicionalmente todo el estado de la sesión (selección,
// datos generales y proveedor elegido) y vuelve a la etapa 1. Disponible desde
// las etapas 1 a 4; después de Committed corresponde Reset.
func (w *Workflow) Abort() error {
	if w.stage == StageCommitted {
		return domain.ErrWorkflowStage
	}
	w.reset()
	return nil
}

// Reset limpia el asistente tras una compra confirmada, dejándolo listo para
// un registro nuevo.
func (w *Workflow) Reset() {
	w.reset()
}

func (w *Workflow) reset() {
	w.selection.Clear()
	w.supplier = nil
	w.newSupplier = false
	w.general = entity.GeneralData{}
	w.record = nil
	w.stage = StageSelectingNeeds
}
