package procurement

import "github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"

// SelectionSet conjunto de trabajo de necesidades elegidas para la compra en
// curso. Mantiene el orden de selección y garantiza a lo sumo un ítem por
// necesidad.
//
// Al agregar siempre se crea un SelectedItem NUEVO con solo los campos
// intrínsecos de la necesidad: deseleccionar y reseleccionar descarta la
// cantidad y el precio que se hubieran cargado. Comportamiento intencional.
type SelectionSet struct {
	items []*entity.SelectedItem
	byID  map[int64]*entity.SelectedItem
}

// NewSelectionSet construye un conjunto vacío.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{byID: make(map[int64]*entity.SelectedItem)}
}

// Add agrega la necesidad con un ítem fresco. No hace nada si ya está.
func (s *SelectionSet) Add(need entity.Need) {
	if s.Contains(need.ID) {
		return
	}
	item := &entity.SelectedItem{
		NeedID:            need.ID,
		ProductName:       need.ProductName,
		Category:          need.Category,
		Area:              need.Area,
		Priority:          need.Priority,
		RequestedQuantity: need.RequestedQuantity,
		Unit:              need.Unit,
	}
	s.items = append(s.items, item)
	s.byID[need.ID] = item
}

// Remove quita la necesidad del conjunto; no hace nada si no estaba.
func (s *SelectionSet) Remove(id int64) {
	if !s.Contains(id) {
		return
	}
	delete(s.byID, id)
	for i, it := range s.items {
		if it.NeedID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

// Toggle agrega o quita según selected.
func (s *SelectionSet) Toggle(need entity.Need, selected bool) {
	if selected {
		s.Add(need)
		return
	}
	s.Remove(need.ID)
}

// Contains indica si la necesidad está seleccionada.
func (s *SelectionSet) Contains(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// Get devuelve el ítem de la necesidad, o nil si no está seleccionada.
func (s *SelectionSet) Get(id int64) *entity.SelectedItem {
	return s.byID[id]
}

// Items devuelve los ítems en orden de selección.
func (s *SelectionSet) Items() []*entity.SelectedItem {
	return s.items
}

// Len cantidad de ítems seleccionados.
func (s *SelectionSet) Len() int {
	return len(s.items)
}

// Clear vacía el conjunto.
func (s *SelectionSet) Clear() {
	s.items = nil
	s.byID = make(map[int64]*entity.SelectedItem)
}

// SelectAllFiltered replica el checkbox "seleccionar todo" del listado:
// con checked agrega cada necesidad visible que falte (aditivo: no toca lo
// seleccionado fuera del filtro); sin checked quita solo las visibles.
func (s *SelectionSet) SelectAllFiltered(filtered []entity.Need, checked bool) {
	for _, n := range filtered {
		if checked {
			s.Add(n)
		} else {
			s.Remove(n.ID)
		}
	}
}
