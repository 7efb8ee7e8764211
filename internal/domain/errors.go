package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores de validación del registro de compras. Las guardas los devuelven al
// intentar avanzar de etapa; la etapa no cambia y los datos cargados se conservan.
var (
	ErrEmptySelection        = errors.New("debe seleccionar al menos una necesidad")
	ErrIncompleteLineItem    = errors.New("hay ítems sin cantidad o precio unitario")
	ErrMissingSupplierOrDate = errors.New("falta resolver el proveedor o la fecha de compra")
	ErrMissingRequiredField  = errors.New("faltan campos obligatorios del proveedor")
	ErrInvalidTaxIDFormat    = errors.New("el CUIT no tiene el formato DD-DDDDDDDD-D")
	ErrDuplicateTaxID        = errors.New("ya existe un proveedor con ese CUIT")
	ErrWorkflowStage         = errors.New("operación no válida en la etapa actual")
)
