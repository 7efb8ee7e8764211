package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

// NeedResponse una necesidad del catálogo en el listado de la etapa 1.
type NeedResponse struct {
	ID                int64           `json:"id"`
	ProductName       string          `json:"product_name"`
	RequestedQuantity decimal.Decimal `json:"requested_quantity"`
	Unit              string          `json:"unit"`
	Category          string          `json:"category"`
	Area              string          `json:"area"`
	Priority          string          `json:"priority"`
	RequestDate       time.Time       `json:"request_date"`
	Selected          bool            `json:"selected"`
}

// ToNeedResponse mapea la entidad marcando si está en la selección actual.
func ToNeedResponse(n entity.Need, selected bool) NeedResponse {
	return NeedResponse{
		ID:                n.ID,
		ProductName:       n.ProductName,
		RequestedQuantity: n.RequestedQuantity,
		Unit:              n.Unit,
		Category:          n.Category,
		Area:              n.Area,
		Priority:          string(n.Priority),
		RequestDate:       n.RequestDate,
		Selected:          selected,
	}
}
