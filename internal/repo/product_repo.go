package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"avagostar-product-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, price, category, stock,
	is_active, created_at, updated_at`

type ProductRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

type ProductFilters struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

func NewProductRepo(pool *pgxpool.Pool, timeout time.Duration) *ProductRepo {
	return &ProductRepo{pool: pool, timeout: timeout}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Stock,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category, stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Stock,
		p.IsActive,
	)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, filters ProductFilters) ([]models.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	whereSQL, args := buildProductFilters(filters)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	offset := (filters.Page - 1) * filters.PerPage
	listArgs := append(args, offset, filters.PerPage)
	query := fmt.Sprintf(
		"SELECT "+productColumns+" FROM products%s ORDER BY id OFFSET $%d LIMIT $%d",
		whereSQL, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products rows: %w", err)
	}
	return products, total, nil
}

func buildProductFilters(filters ProductFilters) (string, []any) {
	var clauses []string
	var args []any

	if filters.Category != "" {
		args = append(args, filters.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}
	whereSQL := " WHERE " + clauses[0]
	for _, clause := range clauses[1:] {
		whereSQL += " AND " + clause
	}
	return whereSQL, args
}

func (r *ProductRepo) Update(ctx context.Context, p *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4,
			stock = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.Stock,
		p.IsActive,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET stock = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+productColumns+`
	`, quantity, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product stock: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
