package cuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/martinmalgor04/sistema-empleados-api/pkg/cuit"
)

// TestIsValid_FormatoExacto cubre los vectores del formulario de proveedores:
// el formato correcto pasa, siete dígitos en el bloque central o guiones
// corridos fallan.
func TestIsValid_FormatoExacto(t *testing.T) {
	casos := []struct {
		nombre string
		taxID  string
		valido bool
	}{
		{"cuit correcto", "30-12345678-1", true},
		{"solo siete digitos centrales", "30-1234567-1", false},
		{"guiones corridos", "301234567-8-1", false},
		{"sin guiones", "30123456781", false},
		{"vacio", "", false},
		{"letras", "3A-12345678-1", false},
		{"digito verificador doble", "30-12345678-12", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.valido, cuit.IsValid(c.taxID),
				"IsValid(%q) debe ser %v", c.taxID, c.valido)
		})
	}
}

func TestNormalize_QuitaPuntosYEspacios(t *testing.T) {
	assert.Equal(t, "30-12345678-1", cuit.Normalize(" 30-12.345.678-1 "))
	assert.Equal(t, "30123456781", cuit.Normalize("30.12345678.1"))
}
