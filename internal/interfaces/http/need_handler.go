package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/dto"
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

// NeedHandler maneja el listado del catálogo de necesidades (etapa 1).
type NeedHandler struct {
	uc *procurement.RegisterPurchaseUseCase
}

// NewNeedHandler construye el handler.
func NewNeedHandler(uc *procurement.RegisterPurchaseUseCase) *NeedHandler {
	return &NeedHandler{uc: uc}
}

// List GET /api/needs?search=&category=&area=&priority=&sort_by=
// Devuelve el catálogo filtrado y ordenado, marcando las necesidades que ya
// están en la selección de la sesión del operador.
func (h *NeedHandler) List(c *fiber.Ctx) error {
	criteria := procurement.Criteria{
		SearchText: c.Query("search"),
		Category:   c.Query("category"),
		Area:       c.Query("area"),
		Priority:   entity.Priority(c.Query("priority")),
		SortBy:     procurement.SortKey(c.Query("sort_by")),
	}
	needs, err := h.uc.ListNeeds(criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	selection := h.uc.Session(GetUserID(c)).Selection()
	out := make([]dto.NeedResponse, 0, len(needs))
	for _, n := range needs {
		out = append(out, dto.ToNeedResponse(n, selection.Contains(n.ID)))
	}
	return c.JSON(out)
}
