package cuit

import (
	"regexp"
	"strings"
	"unicode"
)

// formato CUIT exigido por el formulario de proveedores: dos dígitos de tipo,
// ocho de documento y uno verificador, separados por guiones (ej. "30-12345678-1").
var cuitPattern = regexp.MustCompile(`^\d{2}-\d{8}-\d{1}$`)

// IsValid verifica que el CUIT cumpla exactamente el formato DD-DDDDDDDD-D.
// La validación es solo de formato: el dígito verificador no se recalcula.
func IsValid(taxID string) bool {
	return cuitPattern.MatchString(taxID)
}

// Normalize quita espacios y puntos dejando solo dígitos y guiones,
// útil para comparar CUITs cargados con formatos levemente distintos.
func Normalize(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
