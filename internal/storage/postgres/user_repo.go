package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, first_name, last_name, email, password_hash, phone, address, role,
       newsletter, is_active, notes, join_date, created_at, updated_at`

var userCollection = collection{
	table: "users",
	fields: map[string]string{
		"firstName":  "first_name",
		"lastName":   "last_name",
		"email":      "email",
		"phone":      "phone",
		"role":       "role",
		"newsletter": "newsletter",
		"isActive":   "is_active",
		"joinDate":   "join_date",
		"createdAt":  "created_at",
	},
	defaultSort: "created_at DESC",
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone, &u.Address,
		&u.Role, &u.Newsletter, &u.IsActive, &u.Notes, &u.JoinDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, q repository.ListQuery) ([]model.User, int64, error) {
	where, args, tail := buildListClauses(userCollection, q)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT `+userColumns+` FROM users`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	query := `UPDATE users SET
                  first_name=COALESCE($2, first_name),
                  last_name=COALESCE($3, last_name),
                  email=COALESCE($4, email),
                  phone=COALESCE($5, phone),
                  address=COALESCE($6, address),
                  newsletter=COALESCE($7, newsletter),
                  role=COALESCE($8, role),
                  updated_at=NOW()
              WHERE id=$1 RETURNING ` + userColumns
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id,
		update.FirstName, update.LastName, update.Email, update.Phone,
		update.Address, update.Newsletter, update.Role,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET password_hash=$2, updated_at=NOW() WHERE id=$1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdateNotes(ctx context.Context, id int64, notes string) (*model.User, error) {
	query := `UPDATE users SET notes=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + userColumns
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	query := `UPDATE users SET is_active=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + userColumns
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	query := `SELECT ` + productColumns(`p`) + `
              FROM wishlists w JOIN products p ON p.id = w.product_id
              WHERE w.user_id=$1 ORDER BY w.added_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

func (r *userRepository) WishlistContains(ctx context.Context, userID, productID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM wishlists WHERE user_id=$1 AND product_id=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) AddToWishlist(ctx context.Context, userID, productID int64) error {
	const query = `INSERT INTO wishlists (user_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrAlreadyExists
	}
	return nil
}

func (r *userRepository) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM wishlists WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
