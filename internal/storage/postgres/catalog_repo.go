package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

func productColumns(alias string) string {
	p := ""
	if alias != "" {
		p = alias + "."
	}
	return p + `id, ` + p + `name, ` + p + `category_id, ` + p + `price, ` + p + `description, ` +
		p + `image, ` + p + `allergens, ` + p + `is_available, ` + p + `is_featured, ` +
		p + `customizable, ` + p + `options, ` + p + `min_servings, ` + p + `max_servings, ` +
		p + `min_quantity, ` + p + `max_quantity, ` + p + `created_at, ` + p + `updated_at`
}

var productCollection = collection{
	table: "products",
	fields: map[string]string{
		"name":         "name",
		"category":     "category_id",
		"price":        "price",
		"isAvailable":  "is_available",
		"isFeatured":   "is_featured",
		"customizable": "customizable",
		"createdAt":    "created_at",
	},
	defaultSort: "created_at DESC",
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p          model.Product
		optionsRaw []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.Description, &p.Image, &p.Allergens,
		&p.IsAvailable, &p.IsFeatured, &p.Customizable, &optionsRaw, &p.MinServings,
		&p.MaxServings, &p.MinQuantity, &p.MaxQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(optionsRaw) > 0 {
		if err := json.Unmarshal(optionsRaw, &p.Options); err != nil {
			return nil, fmt.Errorf("decode product options: %w", err)
		}
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	options, err := json.Marshal(product.Options)
	if err != nil {
		return nil, fmt.Errorf("encode product options: %w", err)
	}
	if product.Options == nil {
		options = []byte(`[]`)
	}

	const query = `INSERT INTO products (
            name, category_id, price, description, image, allergens, is_available,
            is_featured, customizable, options, min_servings, max_servings, min_quantity, max_quantity
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, created_at, updated_at`

	created := *product
	err = r.storage.pool.QueryRow(ctx, query,
		product.Name, product.CategoryID, product.Price, product.Description, product.Image,
		product.Allergens, product.IsAvailable, product.IsFeatured, product.Customizable,
		options, product.MinServings, product.MaxServings, product.MinQuantity, product.MaxQuantity,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns("") + ` FROM products WHERE id=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Product, int64, error) {
	where, args, tail := buildListClauses(productCollection, q)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT `+productColumns("")+` FROM products`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListFeatured(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns("") + ` FROM products WHERE is_featured=TRUE ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	query := `SELECT ` + productColumns("") + ` FROM products WHERE category_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	options, err := json.Marshal(product.Options)
	if err != nil {
		return nil, fmt.Errorf("encode product options: %w", err)
	}
	if product.Options == nil {
		options = []byte(`[]`)
	}

	query := `UPDATE products SET
                  name=$2, category_id=$3, price=$4, description=$5, image=$6, allergens=$7,
                  is_available=$8, is_featured=$9, customizable=$10, options=$11,
                  min_servings=$12, max_servings=$13, min_quantity=$14, max_quantity=$15,
                  updated_at=NOW()
              WHERE id=$1 RETURNING ` + productColumns("")
	updated, err := scanProduct(r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.CategoryID, product.Price, product.Description,
		product.Image, product.Allergens, product.IsAvailable, product.IsFeatured,
		product.Customizable, options, product.MinServings, product.MaxServings,
		product.MinQuantity, product.MaxQuantity,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id=$1`, categoryID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// --- CategoryRepository implementation ---

const categoryColumns = `id, name, description, image, created_at, updated_at`

func scanCategory(row rowScanner) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (name, description, image) VALUES ($1,$2,$3)
                   RETURNING id, created_at, updated_at`
	created := *category
	err := r.storage.pool.QueryRow(ctx, query, category.Name, category.Description, category.Image).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id=$1`
	category, err := scanCategory(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `UPDATE categories SET name=$2, description=$3, image=$4, updated_at=NOW()
              WHERE id=$1 RETURNING ` + categoryColumns
	updated, err := scanCategory(r.storage.pool.QueryRow(ctx, query,
		category.ID, category.Name, category.Description, category.Image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return &domainErrors.ConflictError{Message: "cannot delete category with associated products"}
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
