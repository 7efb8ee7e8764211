package procurement

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
)

// SortKey criterio de orden del listado de necesidades.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByQuantity SortKey = "quantity"
	SortByPriority SortKey = "priority"
)

// Criteria filtros del listado de necesidades (etapa 1 del asistente).
// Todos los campos son opcionales: vacío significa "no filtrar por esto".
type Criteria struct {
	SearchText string          // substring case-insensitive sobre el nombre del producto
	Category   string          // igualdad exacta
	Area       string          // igualdad exacta
	Priority   entity.Priority // igualdad exacta
	SortBy     SortKey
}

// FilteredNeeds aplica filtros y orden sobre el catálogo completo. Es una
// función pura: se recalcula en cada cambio de criterios y no guarda estado.
//
// Orden según SortBy:
//   - name: ascendente por nombre con colación española (Ñ, acentos).
//   - quantity: descendente por cantidad solicitada.
//   - priority: descendente por rango (alta:3, media:2, baja:1); a igual rango
//     se conserva el orden de entrada (orden estable, sin clave secundaria).
func FilteredNeeds(all []entity.Need, c Criteria) []entity.Need {
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]entity.Need, 0, len(all))
	for _, n := range all {
		if search != "" && !strings.Contains(strings.ToLower(n.ProductName), search) {
			continue
		}
		if c.Category != "" && n.Category != c.Category {
			continue
		}
		if c.Area != "" && n.Area != c.Area {
			continue
		}
		if c.Priority != "" && n.Priority != c.Priority {
			continue
		}
		out = append(out, n)
	}

	switch c.SortBy {
	case SortByName:
		// el collator no es seguro para uso concurrente: uno por llamada
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].ProductName, out[j].ProductName) < 0
		})
	case SortByQuantity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RequestedQuantity.GreaterThan(out[j].RequestedQuantity)
		})
	case SortByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	}

	return out
}
