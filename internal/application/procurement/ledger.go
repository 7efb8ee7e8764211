package procurement

import (
	"github.com/shopspring/decimal"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
)

// EditField campo editable de un renglón del ledger.
type EditField string

const (
	EditQuantity EditField = "quantity"
	EditSubtotal EditField = "subtotal"
)

// Ledger deriva cantidad/precio/subtotal por renglón y el total de la compra.
// Opera sobre los ítems del SelectionSet de la sesión.
type Ledger struct {
	selection *SelectionSet
}

// NewLedger construye el ledger sobre el conjunto de selección.
func NewLedger(selection *SelectionSet) *Ledger {
	return &Ledger{selection: selection}
}

// ApplyEdit aplica exactamente UNA de las dos reglas de derivación, nunca las
// dos a la vez:
//
//   - quantity: cantidad = valor; subtotal = cantidad * precio unitario actual
//     (0 si no está cargado). El precio unitario no se toca.
//   - subtotal: subtotal = valor; precio unitario = subtotal / cantidad
//     efectiva, donde la cantidad efectiva es la actual si es > 0 y si no 1
//     (evita la división por cero en lugar de rechazar la edición). La
//     cantidad conserva su valor previo; si no estaba cargada queda en 1,
//     consistente con el divisor.
//
// Nunca se intenta resolver precio y cantidad a la vez desde un solo subtotal.
func (l *Ledger) ApplyEdit(needID int64, field EditField, value decimal.Decimal) error {
	item := l.selection.Get(needID)
	if item == nil {
		return domain.ErrNotFound
	}

	switch field {
	case EditQuantity:
		qty := value
		price := decimal.Zero
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		subtotal := qty.Mul(price)
		item.PurchasedQuantity = &qty
		item.Subtotal = &subtotal

	case EditSubtotal:
		subtotal := value
		divisor := decimal.NewFromInt(1)
		if item.PurchasedQuantity == nil {
			qty := decimal.NewFromInt(1)
			item.PurchasedQuantity = &qty
		} else if item.PurchasedQuantity.GreaterThan(decimal.Zero) {
			divisor = *item.PurchasedQuantity
		}
		price := subtotal.Div(divisor)
		item.UnitPrice = &price
		item.Subtotal = &subtotal

	default:
		return domain.ErrInvalidInput
	}

	return nil
}

// Total suma los subtotales de todos los ítems seleccionados; los renglones
// sin subtotal cuentan como 0.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.selection.Items() {
		if item.Subtotal != nil {
			total = total.Add(*item.Subtotal)
		}
	}
	return total
}
