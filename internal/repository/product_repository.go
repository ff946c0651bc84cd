package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chocolate-catalog/internal/domain"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product and fills in the database-generated id. The
// insert runs in its own transaction; any failure rolls it back.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO products (name, description, manufacturer_id, batch_number)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.ManufacturerID,
		product.BatchNumber,
	).Scan(&product.ProductID)

	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List retrieves every product. No filtering or explicit ordering; rows come
// back in whatever order the database returns them.
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT product_id, name, description, manufacturer_id, batch_number
		FROM products
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Description,
			&product.ManufacturerID,
			&product.BatchNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
