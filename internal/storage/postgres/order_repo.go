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

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, order_number, user_id, customer_name, customer_email, customer_phone,
       customer_address, items, total, status, payment_method, payment_status, payment_details,
       order_date, delivery_method, delivery_date, delivery_address, delivery_instructions,
       notes, created_at, updated_at`

var orderCollection = collection{
	table: "orders",
	fields: map[string]string{
		"orderNumber":    "order_number",
		"status":         "status",
		"paymentStatus":  "payment_status",
		"paymentMethod":  "payment_method",
		"total":          "total",
		"deliveryMethod": "delivery_method",
		"deliveryDate":   "delivery_date",
		"orderDate":      "order_date",
		"createdAt":      "created_at",
	},
	defaultSort: "created_at DESC",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o              model.Order
		itemsRaw       []byte
		detailsRaw     []byte
		paymentDetails model.PaymentDetails
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Customer.UserID, &o.Customer.Name, &o.Customer.Email,
		&o.Customer.Phone, &o.Customer.Address, &itemsRaw, &o.Total, &o.Status,
		&o.PaymentMethod, &o.PaymentStatus, &detailsRaw, &o.OrderDate, &o.DeliveryMethod,
		&o.DeliveryDate, &o.DeliveryAddress, &o.DeliveryInstructions, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	if len(detailsRaw) > 0 {
		if err := json.Unmarshal(detailsRaw, &paymentDetails); err != nil {
			return nil, fmt.Errorf("decode payment details: %w", err)
		}
		o.PaymentDetails = paymentDetails
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	const query = `INSERT INTO orders (
            order_number, user_id, customer_name, customer_email, customer_phone,
            customer_address, items, total, status, payment_status, delivery_method,
            delivery_date, delivery_address, delivery_instructions
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, order_date, created_at, updated_at`

	created := *order
	err = r.storage.pool.QueryRow(ctx, query,
		order.OrderNumber, order.Customer.UserID, order.Customer.Name, order.Customer.Email,
		order.Customer.Phone, order.Customer.Address, items, order.Total,
		model.OrderStatusPending, model.PaymentStatusPending, order.DeliveryMethod,
		order.DeliveryDate, order.DeliveryAddress, order.DeliveryInstructions,
	).Scan(&created.ID, &created.OrderDate, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	created.Status = model.OrderStatusPending
	created.PaymentStatus = model.PaymentStatusPending
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_details->>'checkoutRequestId'=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, checkoutRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY order_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) List(ctx context.Context, q repository.ListQuery, expandOwner bool) ([]model.Order, int64, error) {
	where, args, tail := buildListClauses(orderCollection, q)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where + tail
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if expandOwner {
		if err := r.attachOwners(ctx, result); err != nil {
			return nil, 0, err
		}
	}
	return result, total, nil
}

// attachOwners expands the weak user reference for the admin listing. This is
// a fixed per-endpoint capability, never client-controlled.
func (r *orderRepository) attachOwners(ctx context.Context, orders []model.Order) error {
	ids := make([]int64, 0, len(orders))
	seen := make(map[int64]bool)
	for _, o := range orders {
		if o.Customer.UserID != nil && !seen[*o.Customer.UserID] {
			seen[*o.Customer.UserID] = true
			ids = append(ids, *o.Customer.UserID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	const query = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	owners := make(map[int64]*model.User, len(ids))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return err
		}
		owners[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		if orders[i].Customer.UserID != nil {
			orders[i].Owner = owners[*orders[i].Customer.UserID]
		}
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateNotes(ctx context.Context, id int64, notes string) (*model.Order, error) {
	query := `UPDATE orders SET notes=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdatePayment overwrites the payment status and merges the patch into the
// stored details so correlation ids from initiation survive the callback.
func (r *orderRepository) UpdatePayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error) {
	patch, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode payment details: %w", err)
	}

	query := `UPDATE orders
              SET payment_status=$2,
                  payment_details=COALESCE(payment_details, '{}'::jsonb) || $3::jsonb,
                  updated_at=NOW()
              WHERE id=$1 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, patch))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) SetPaymentInitiated(ctx context.Context, id int64, method string, details model.PaymentDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode payment details: %w", err)
	}

	const query = `UPDATE orders SET payment_method=$2, payment_details=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, method, payload)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
