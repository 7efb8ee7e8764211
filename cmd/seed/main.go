// seed carga datos de demostración: necesidades pendientes, proveedores y un
// usuario admin. Pensado para entornos de desarrollo sobre un esquema ya
// aplicado (scripts/schema.sql).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/entity"
	"github.com/martinmalgor04/sistema-empleados-api/internal/infrastructure/postgres"
	"github.com/martinmalgor04/sistema-empleados-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	// Necesidades pendientes de ejemplo (catálogo de la etapa 1)
	needs := []struct {
		id       int64
		product  string
		qty      string
		unit     string
		category string
		area     string
		priority string
	}{
		{1, "Paracetamol 500mg", "50", "cajas", "Medicamentos", "Enfermería", "alta"},
		{2, "Alcohol etílico 96%", "20", "litros", "Medicamentos", "Enfermería", "media"},
		{3, "Pañales adultos talle M", "200", "unidades", "Higiene", "Enfermería", "alta"},
		{4, "Ibuprofeno 400mg", "30", "cajas", "Medicamentos", "Enfermería", "baja"},
		{5, "Detergente industrial", "15", "bidones", "Limpieza", "Cocina", "media"},
		{6, "Arroz", "100", "kg", "Alimentos", "Cocina", "alta"},
	}
	for _, n := range needs {
		qty, _ := decimal.NewFromString(n.qty)
		_, err := pool.Exec(ctx, `
			INSERT INTO needs (id, product_name, requested_quantity, unit, category, area, priority, request_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			n.id, n.product, qty, n.unit, n.category, n.area, n.priority, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar necesidad %d: %v\n", n.id, err)
			os.Exit(1)
		}
	}

	// Proveedores de ejemplo
	supplierRepo := postgres.NewSupplierRepository(pool)
	suppliers := []entity.Supplier{
		{ID: 1, TaxID: "30-12345678-1", Name: "Droguería del Litoral", Phone: "0379-4421100", Address: "Av. Libertad 1450, Corrientes", Status: entity.SupplierActive, CreatedAt: now, UpdatedAt: now},
		{ID: 2, TaxID: "27-87654321-3", Name: "Distribuidora Norte SRL", Phone: "0379-4433200", Address: "Junín 820, Corrientes", Status: entity.SupplierActive, CreatedAt: now, UpdatedAt: now},
		{ID: 3, TaxID: "20-11223344-5", Name: "Limpieza Total", Phone: "", Address: "", Status: entity.SupplierInactive, CreatedAt: now, UpdatedAt: now},
	}
	for _, s := range suppliers {
		if err := supplierRepo.Append(&s); err != nil {
			// Ya sembrado: seguir con el resto
			fmt.Fprintf(os.Stderr, "proveedor %d: %v (se ignora)\n", s.ID, err)
		}
	}

	// Usuario admin de desarrollo
	userRepo := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@sistema-empleados.local",
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "usuario admin: %v (se ignora)\n", err)
	}

	fmt.Printf("Seed completado: %d necesidades, %d proveedores, usuario %s\n",
		len(needs), len(suppliers), admin.Email)
}
