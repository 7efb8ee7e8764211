package procurement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

func directorioDePrueba() []entity.Supplier {
	return []entity.Supplier{
		{ID: 1, TaxID: "30-11111111-1", Name: "Droguería del Sur", Phone: "011-4444-5555", Address: "Av. Mitre 120", Status: entity.SupplierActive},
		{ID: 2, TaxID: "30-22222222-2", Name: "Distribuidora Norte", Phone: "011-6666-7777", Address: "Ruta 12 km 3", Status: entity.SupplierInactive},
		{ID: 5, TaxID: "27-33333333-3", Name: "Insumos Médicos SA", Phone: "011-8888-9999", Address: "Belgrano 450", Status: entity.SupplierActive},
	}
}

func candidatoValido() procurement.SupplierCandidate {
	return procurement.SupplierCandidate{
		TaxID:   "30-12345678-1",
		Name:    "Acme",
		Phone:   "011-1234-5678",
		Address: "Corrientes 800",
	}
}

func TestValidateTaxID_Vectores(t *testing.T) {
	assert.True(t, procurement.ValidateTaxID("30-12345678-1"))
	assert.False(t, procurement.ValidateTaxID("30-1234567-1"), "siete dígitos centrales")
	assert.False(t, procurement.ValidateTaxID("301234567-8-1"), "guiones corridos")
}

func TestValidateNew_CamposObligatorios(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*procurement.SupplierCandidate)
	}{
		{"sin cuit", func(c *procurement.SupplierCandidate) { c.TaxID = "" }},
		{"sin nombre", func(c *procurement.SupplierCandidate) { c.Name = "  " }},
		{"sin telefono", func(c *procurement.SupplierCandidate) { c.Phone = "" }},
		{"sin direccion", func(c *procurement.SupplierCandidate) { c.Address = "" }},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			c := candidatoValido()
			caso.mutar(&c)
			err := procurement.ValidateNew(c, directorioDePrueba(), 0)
			assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
		})
	}
}

func TestValidateNew_FormatoCUIT(t *testing.T) {
	c := candidatoValido()
	c.TaxID = "30-1234567-1"
	err := procurement.ValidateNew(c, directorioDePrueba(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTaxIDFormat)
}

func TestValidateNew_CUITDuplicadoIncluyeInactivos(t *testing.T) {
	c := candidatoValido()
	c.TaxID = "30-22222222-2" // pertenece a un proveedor inactivo
	err := procurement.ValidateNew(c, directorioDePrueba(), 0)
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID,
		"la unicidad del CUIT abarca activos e inactivos")
}

func TestValidateNew_ExcludingIDPermiteEditar(t *testing.T) {
	c := procurement.SupplierCandidate{TaxID: "30-11111111-1", Name: "Droguería del Sur", Phone: "x", Address: "y"}
	assert.NoError(t, procurement.ValidateNew(c, directorioDePrueba(), 1),
		"al editar, el propio proveedor no cuenta como duplicado")
	assert.ErrorIs(t, procurement.ValidateNew(c, directorioDePrueba(), 0), domain.ErrDuplicateTaxID)
}

func TestValidateNew_NormalizaCUITAntesDeComparar(t *testing.T) {
	// el mismo CUIT cargado con espacios cuenta como duplicado
	c := candidatoValido()
	c.TaxID = " 30 - 11111111 - 1 "
	err := procurement.ValidateNew(c, directorioDePrueba(), 0)
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID,
		"los espacios no distinguen CUITs: se normaliza antes de comparar")

	// y un CUIT nuevo con espacios pasa la validación de formato
	c.TaxID = " 20 - 99887766 - 5 "
	assert.NoError(t, procurement.ValidateNew(c, directorioDePrueba(), 0))
}

func TestCreate_GuardaElCUITNormalizado(t *testing.T) {
	c := candidatoValido()
	c.TaxID = " 30 - 12345678 - 1 "
	s := procurement.Create(c, directorioDePrueba())
	assert.Equal(t, "30-12345678-1", s.TaxID)
}

func TestCreate_AsignaMaxMasUnoYActivo(t *testing.T) {
	s := procurement.Create(candidatoValido(), directorioDePrueba())
	assert.Equal(t, int64(6), s.ID, "max(1,2,5)+1")
	assert.Equal(t, entity.SupplierActive, s.Status)
	assert.Equal(t, "Acme", s.Name)
}

func TestCreate_DirectorioVacioArrancaEnUno(t *testing.T) {
	s := procurement.Create(candidatoValido(), nil)
	assert.Equal(t, int64(1), s.ID)
}

func TestSearch_SoloActivosPorNombreOCUIT(t *testing.T) {
	dir := directorioDePrueba()

	porNombre := procurement.Search("drogue", dir)
	if assert.Len(t, porNombre, 1, "nombre case-insensitive, solo activos") {
		assert.Equal(t, int64(1), porNombre[0].ID)
	}

	porCUIT := procurement.Search("27-3333", dir)
	if assert.Len(t, porCUIT, 1, "substring cruda sobre el CUIT") {
		assert.Equal(t, int64(5), porCUIT[0].ID)
	}

	// el inactivo no aparece aunque matchee
	assert.Empty(t, procurement.Search("Norte", dir))

	// consulta vacía lista todos los activos
	assert.Len(t, procurement.Search("", dir), 2)
}
