package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

// ToggleSelectionRequest marca o desmarca una necesidad en la etapa 1.
type ToggleSelectionRequest struct {
	NeedID   int64 `json:"need_id"`
	Selected bool  `json:"selected"`
}

// SelectAllRequest checkbox "seleccionar todo" sobre el filtro actual.
type SelectAllRequest struct {
	Checked    bool   `json:"checked"`
	SearchText string `json:"search_text"`
	Category   string `json:"category"`
	Area       string `json:"area"`
	Priority   string `json:"priority"`
}

// Criteria arma los criterios de filtrado a partir del request.
func (r SelectAllRequest) Criteria() procurement.Criteria {
	return procurement.Criteria{
		SearchText: r.SearchText,
		Category:   r.Category,
		Area:       r.Area,
		Priority:   entity.Priority(r.Priority),
	}
}

// ItemEditRequest edición de un renglón del ledger: cantidad o subtotal.
type ItemEditRequest struct {
	Field string          `json:"field"` // "quantity" | "subtotal"
	Value decimal.Decimal `json:"value"`
}

// ResolveSupplierRequest resuelve el proveedor de la compra: o bien el id de
// uno existente, o bien los datos de uno nuevo (exactamente uno de los dos).
type ResolveSupplierRequest struct {
	SupplierID int64                  `json:"supplier_id"`
	New        *CreateSupplierRequest `json:"new"`
}

// GeneralDataRequest datos generales de la compra (etapa 3).
type GeneralDataRequest struct {
	SellerLabel           string `json:"seller_label"`
	PurchaseDate          string `json:"purchase_date"` // YYYY-MM-DD
	PurchaseTime          string `json:"purchase_time"` // HH:MM
	Status                string `json:"status"`        // "received" | "pending"
	EstimatedDeliveryDate string `json:"estimated_delivery_date"`
	ReceiptReference      string `json:"receipt_reference"`
}

// ToGeneralData mapea el request a la entidad.
func (r GeneralDataRequest) ToGeneralData() entity.GeneralData {
	return entity.GeneralData{
		SellerLabel:           r.SellerLabel,
		PurchaseDate:          r.PurchaseDate,
		PurchaseTime:          r.PurchaseTime,
		Status:                entity.PurchaseStatus(r.Status),
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		ReceiptReference:      r.ReceiptReference,
	}
}

// SelectedItemResponse un renglón del ledger; los campos aún no cargados van en null.
type SelectedItemResponse struct {
	NeedID            int64            `json:"need_id"`
	ProductName       string           `json:"product_name"`
	Category          string           `json:"category"`
	Area              string           `json:"area"`
	Priority          string           `json:"priority"`
	RequestedQuantity decimal.Decimal  `json:"requested_quantity"`
	Unit              string           `json:"unit"`
	PurchasedQuantity *decimal.Decimal `json:"purchased_quantity"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	Subtotal          *decimal.Decimal `json:"subtotal"`
}

// GeneralDataResponse datos generales cargados hasta el momento.
type GeneralDataResponse struct {
	SellerLabel           string `json:"seller_label"`
	PurchaseDate          string `json:"purchase_date"`
	PurchaseTime          string `json:"purchase_time"`
	Status                string `json:"status"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date,omitempty"`
	ReceiptReference      string `json:"receipt_reference,omitempty"`
}

// SessionResponse foto de la sesión del asistente para el frontend.
type SessionResponse struct {
	Stage     int                    `json:"stage"`
	StageName string                 `json:"stage_name"`
	Items     []SelectedItemResponse `json:"items"`
	Supplier  *SupplierResponse      `json:"supplier,omitempty"`
	General   GeneralDataResponse    `json:"general"`
	Total     decimal.Decimal        `json:"total"`
}

// ToSessionResponse arma la foto a partir del workflow.
func ToSessionResponse(w *procurement.Workflow) SessionResponse {
	items := make([]SelectedItemResponse, 0, w.Selection().Len())
	for _, it := range w.Selection().Items() {
		items = append(items, toSelectedItemResponse(*it))
	}
	resp := SessionResponse{
		Stage:     int(w.Stage()),
		StageName: w.Stage().String(),
		Items:     items,
		General:   toGeneralDataResponse(w.General()),
		Total:     w.Ledger().Total(),
	}
	if s := w.Supplier(); s != nil {
		sup := ToSupplierResponse(*s)
		resp.Supplier = &sup
	}
	return resp
}

// PurchaseResponse una compra confirmada del historial.
type PurchaseResponse struct {
	ID        string                 `json:"id"`
	Items     []SelectedItemResponse `json:"items"`
	Supplier  SupplierResponse       `json:"supplier"`
	General   GeneralDataResponse    `json:"general"`
	Total     decimal.Decimal        `json:"total"`
	CreatedAt time.Time              `json:"created_at"`
	CreatedBy string                 `json:"created_by"`
}

// ToPurchaseResponse mapea el registro confirmado.
func ToPurchaseResponse(r *entity.PurchaseRecord) *PurchaseResponse {
	if r == nil {
		return nil
	}
	items := make([]SelectedItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, toSelectedItemResponse(it))
	}
	return &PurchaseResponse{
		ID:        r.ID,
		Items:     items,
		Supplier:  ToSupplierResponse(r.Supplier),
		General:   toGeneralDataResponse(r.General),
		Total:     r.Total,
		CreatedAt: r.CreatedAt,
		CreatedBy: r.CreatedBy,
	}
}

func toSelectedItemResponse(it entity.SelectedItem) SelectedItemResponse {
	return SelectedItemResponse{
		NeedID:            it.NeedID,
		ProductName:       it.ProductName,
		Category:          it.Category,
		Area:              it.Area,
		Priority:          string(it.Priority),
		RequestedQuantity: it.RequestedQuantity,
		Unit:              it.Unit,
		PurchasedQuantity: it.PurchasedQuantity,
		UnitPrice:         it.UnitPrice,
		Subtotal:          it.Subtotal,
	}
}

func toGeneralDataResponse(g entity.GeneralData) GeneralDataResponse {
	return GeneralDataResponse{
		SellerLabel:           g.SellerLabel,
		PurchaseDate:          g.PurchaseDate,
		PurchaseTime:          g.PurchaseTime,
		Status:                string(g.Status),
		EstimatedDeliveryDate: g.EstimatedDeliveryDate,
		ReceiptReference:      g.ReceiptReference,
	}
}
