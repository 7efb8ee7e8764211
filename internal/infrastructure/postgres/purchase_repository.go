package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository.
// La cabecera va en purchases (con snapshot del proveedor al momento de
// confirmar) y los renglones en purchase_items.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra confirmada: cabecera + renglones.
// Usarlo dentro del TxRunner para que cabecera y renglones sean atómicos.
func (r *PurchaseRepo) Create(record *entity.PurchaseRecord) error {
	ctx := context.Background()

	headerQuery := `
		INSERT INTO purchases (
			id, supplier_id, supplier_tax_id, supplier_name,
			seller_label, purchase_date, purchase_time, status,
			estimated_delivery_date, receipt_reference,
			total, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, headerQuery,
		record.ID, record.Supplier.ID, record.Supplier.TaxID, record.Supplier.Name,
		record.General.SellerLabel, record.General.PurchaseDate, record.General.PurchaseTime,
		record.General.Status, record.General.EstimatedDeliveryDate, record.General.ReceiptReference,
		record.Total, record.CreatedAt, record.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (
			purchase_id, need_id, product_name, category, area, priority,
			requested_quantity, unit, purchased_quantity, unit_price, subtotal
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, item := range record.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			record.ID, item.NeedID, item.ProductName, item.Category, item.Area, item.Priority,
			item.RequestedQuantity, item.Unit, item.PurchasedQuantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

const purchaseColumns = `
	id, supplier_id, supplier_tax_id, supplier_name,
	seller_label, purchase_date, purchase_time, status,
	estimated_delivery_date, receipt_reference,
	total, created_at, created_by`

// GetByID obtiene una compra con sus renglones; nil si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	record, err := scanPurchase(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.itemsFor(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	record.Items = items
	return record, nil
}

// List devuelve el historial paginado, más reciente primero, con renglones.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.PurchaseRecord, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var records []*entity.PurchaseRecord
	for rows.Next() {
		record, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, record := range records {
		items, err := r.itemsFor(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		record.Items = items
	}
	return records, nil
}

func (r *PurchaseRepo) itemsFor(ctx context.Context, purchaseID string) ([]entity.SelectedItem, error) {
	query := `
		SELECT need_id, product_name, category, area, priority,
		       requested_quantity, unit, purchased_quantity, unit_price, subtotal
		FROM purchase_items WHERE purchase_id = $1 ORDER BY need_id`
	rows, err := r.q.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var items []entity.SelectedItem
	for rows.Next() {
		var item entity.SelectedItem
		if err := rows.Scan(&item.NeedID, &item.ProductName, &item.Category, &item.Area, &item.Priority,
			&item.RequestedQuantity, &item.Unit, &item.PurchasedQuantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanPurchase(row pgx.Row) (*entity.PurchaseRecord, error) {
	var record entity.PurchaseRecord
	err := row.Scan(
		&record.ID, &record.Supplier.ID, &record.Supplier.TaxID, &record.Supplier.Name,
		&record.General.SellerLabel, &record.General.PurchaseDate, &record.General.PurchaseTime,
		&record.General.Status, &record.General.EstimatedDeliveryDate, &record.General.ReceiptReference,
		&record.Total, &record.CreatedAt, &record.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
