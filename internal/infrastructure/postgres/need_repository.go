package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

var _ repository.NeedRepository = (*NeedRepo)(nil)

// NeedRepo implementación de NeedRepository (usable con pool o tx).
type NeedRepo struct {
	q Querier
}

// NewNeedRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNeedRepository(q Querier) *NeedRepo {
	return &NeedRepo{q: q}
}

// List devuelve el catálogo completo de necesidades pendientes.
func (r *NeedRepo) List() ([]entity.Need, error) {
	query := `
		SELECT id, product_name, requested_quantity, unit, category, area, priority, request_date
		FROM needs ORDER BY request_date, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list needs: %w", err)
	}
	defer rows.Close()
	var list []entity.Need
	for rows.Next() {
		var n entity.Need
		if err := rows.Scan(&n.ID, &n.ProductName, &n.RequestedQuantity, &n.Unit,
			&n.Category, &n.Area, &n.Priority, &n.RequestDate); err != nil {
			return nil, fmt.Errorf("scan need: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// GetByID obtiene una necesidad por id; nil si no existe.
func (r *NeedRepo) GetByID(id int64) (*entity.Need, error) {
	query := `
		SELECT id, product_name, requested_quantity, unit, category, area, priority, request_date
		FROM needs WHERE id = $1`
	var n entity.Need
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.ProductName, &n.RequestedQuantity, &n.Unit,
		&n.Category, &n.Area, &n.Priority, &n.RequestDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get need: %w", err)
	}
	return &n, nil
}
