package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/dto"
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
)

// ProcurementHandler expone el asistente de registro de compras. Cada operador
// tiene una sesión propia (identificada por el user_id del token); todos los
// endpoints operan sobre ella.
type ProcurementHandler struct {
	uc *procurement.RegisterPurchaseUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *procurement.RegisterPurchaseUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// StartSession POST /api/procurement/session
// Arranca un asistente fresco, descartando el anterior si lo había.
func (h *ProcurementHandler) StartSession(c *fiber.Ctx) error {
	w := h.uc.StartSession(GetUserID(c))
	return c.Status(fiber.StatusCreated).JSON(dto.ToSessionResponse(w))
}

// Session GET /api/procurement/session
// Foto de la sesión actual: etapa, renglones, proveedor, datos generales y total.
func (h *ProcurementHandler) Session(c *fiber.Ctx) error {
	w := h.uc.Session(GetUserID(c))
	return c.JSON(dto.ToSessionResponse(w))
}

// ToggleSelection PUT /api/procurement/session/selection
func (h *ProcurementHandler) ToggleSelection(c *fiber.Ctx) error {
	var in dto.ToggleSelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operatorID := GetUserID(c)
	if err := h.uc.ToggleNeed(operatorID, in.NeedID, in.Selected); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "necesidad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// SelectAll PUT /api/procurement/session/selection/all
// Aplica el checkbox "seleccionar todo" sobre el resultado visible del filtro.
func (h *ProcurementHandler) SelectAll(c *fiber.Ctx) error {
	var in dto.SelectAllRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operatorID := GetUserID(c)
	if err := h.uc.SelectAllFiltered(operatorID, in.Criteria(), in.Checked); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// EditItem PUT /api/procurement/session/items/:needId
// Edita cantidad o subtotal de un renglón; el campo complementario se deriva.
func (h *ProcurementHandler) EditItem(c *fiber.Ctx) error {
	needID, err := strconv.ParseInt(c.Params("needId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "needId inválido"})
	}
	var in dto.ItemEditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var field procurement.EditField
	switch in.Field {
	case "quantity":
		field = procurement.EditQuantity
	case "subtotal":
		field = procurement.EditSubtotal
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field debe ser quantity o subtotal"})
	}
	operatorID := GetUserID(c)
	if err := h.uc.EditItem(operatorID, needID, field, in.Value); err != nil {
		return mapProcurementError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// ResolveSupplier PUT /api/procurement/session/supplier
// Fija el proveedor de la compra: uno existente por id, o uno nuevo con datos.
func (h *ProcurementHandler) ResolveSupplier(c *fiber.Ctx) error {
	var in dto.ResolveSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operatorID := GetUserID(c)
	switch {
	case in.New != nil:
		candidate := procurement.SupplierCandidate{
			TaxID:   in.New.TaxID,
			Name:    in.New.Name,
			Phone:   in.New.Phone,
			Address: in.New.Address,
		}
		if err := h.uc.ResolveNewSupplier(operatorID, candidate); err != nil {
			return mapProcurementError(c, err)
		}
	case in.SupplierID > 0:
		if err := h.uc.ResolveSupplier(operatorID, in.SupplierID); err != nil {
			if err == domain.ErrNotFound {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
			}
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el proveedor está inactivo"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "indicar supplier_id o new"})
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// SearchSuppliers GET /api/procurement/suppliers?q=
// Búsqueda de proveedores activos para el selector del asistente.
func (h *ProcurementHandler) SearchSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.SearchSuppliers(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return c.JSON(out)
}

// SetGeneral PUT /api/procurement/session/general
func (h *ProcurementHandler) SetGeneral(c *fiber.Ctx) error {
	var in dto.GeneralDataRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operatorID := GetUserID(c)
	if err := h.uc.SetGeneral(operatorID, in.ToGeneralData()); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido o falta fecha estimada de entrega para compra pendiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// Advance POST /api/procurement/session/next
// Valida la guarda de la etapa actual y avanza. Ante violación la etapa no
// cambia y se devuelve el motivo.
func (h *ProcurementHandler) Advance(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if err := h.uc.Advance(operatorID); err != nil {
		return mapProcurementError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// Back POST /api/procurement/session/back
func (h *ProcurementHandler) Back(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if err := h.uc.Back(operatorID); err != nil {
		return mapProcurementError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// Abort POST /api/procurement/session/abort
// Descarta todo el estado de la sesión y vuelve a la etapa 1.
func (h *ProcurementHandler) Abort(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if err := h.uc.Abort(operatorID); err != nil {
		return mapProcurementError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(h.uc.Session(operatorID)))
}

// Confirm POST /api/procurement/session/confirm
// Cierra el asistente: persiste compra y proveedor nuevo en una transacción.
func (h *ProcurementHandler) Confirm(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	record, err := h.uc.Confirm(c.Context(), operatorID)
	if err != nil {
		return mapProcurementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseResponse(record))
}

// mapProcurementError traduce los errores de validación del asistente a HTTP.
// Las violaciones de guarda van como 422 (la petición se entendió pero el
// estado de la sesión no permite la operación); el resto según su naturaleza.
func mapProcurementError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrEmptySelection:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_SELECTION", Message: err.Error()})
	case domain.ErrIncompleteLineItem:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INCOMPLETE_ITEM", Message: err.Error()})
	case domain.ErrMissingSupplierOrDate:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_SUPPLIER_OR_DATE", Message: err.Error()})
	case domain.ErrMissingRequiredField:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrInvalidTaxIDFormat:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CUIT", Message: err.Error()})
	case domain.ErrDuplicateTaxID:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CUIT", Message: err.Error()})
	case domain.ErrWorkflowStage:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STAGE", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
