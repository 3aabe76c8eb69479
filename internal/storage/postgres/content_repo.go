package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

type faqRepository struct {
	storage *Storage
}

type testimonialRepository struct {
	storage *Storage
}

const faqColumns = `id, question, answer, category, display_order, created_at, updated_at`

var faqCollection = collection{
	table: "faqs",
	fields: map[string]string{
		"question":  "question",
		"category":  "category",
		"order":     "display_order",
		"createdAt": "created_at",
	},
	defaultSort: "created_at DESC",
}

func scanFAQ(row rowScanner) (*model.FAQ, error) {
	var f model.FAQ
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *faqRepository) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	const query = `INSERT INTO faqs (question, answer, category, display_order)
                   VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at`
	created := *faq
	err := r.storage.pool.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Category, faq.DisplayOrder).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *faqRepository) GetByID(ctx context.Context, id int64) (*model.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id=$1`
	faq, err := scanFAQ(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return faq, nil
}

func (r *faqRepository) ListOrdered(ctx context.Context) ([]model.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs ORDER BY display_order`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFAQs(rows)
}

func (r *faqRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM faqs WHERE category <> '' ORDER BY category`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *faqRepository) List(ctx context.Context, q repository.ListQuery) ([]model.FAQ, int64, error) {
	where, args, tail := buildListClauses(faqCollection, q)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT `+faqColumns+` FROM faqs`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectFAQs(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func collectFAQs(rows pgx.Rows) ([]model.FAQ, error) {
	var result []model.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *faq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *faqRepository) Update(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	query := `UPDATE faqs SET question=$2, answer=$3, category=$4, display_order=$5, updated_at=NOW()
              WHERE id=$1 RETURNING ` + faqColumns
	updated, err := scanFAQ(r.storage.pool.QueryRow(ctx, query,
		faq.ID, faq.Question, faq.Answer, faq.Category, faq.DisplayOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// UpdateDisplayOrders moves the whole batch in one transaction; an unknown
// id rolls back every earlier move.
func (r *faqRepository) UpdateDisplayOrders(ctx context.Context, orders []repository.FAQOrder) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, o := range orders {
			tag, err := tx.Exec(ctx, `UPDATE faqs SET display_order=$2, updated_at=NOW() WHERE id=$1`, o.ID, o.Order)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrNotFound
			}
		}
		return nil
	})
}

func (r *faqRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- TestimonialRepository implementation ---

const testimonialColumns = `id, name, location, rating, text, image, approved, date, created_at, updated_at`

var testimonialCollection = collection{
	table: "testimonials",
	fields: map[string]string{
		"name":      "name",
		"location":  "location",
		"rating":    "rating",
		"approved":  "approved",
		"date":      "date",
		"createdAt": "created_at",
	},
	defaultSort: "created_at DESC",
}

func scanTestimonial(row rowScanner) (*model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Text, &t.Image,
		&t.Approved, &t.Date, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	const query = `INSERT INTO testimonials (name, location, rating, text, image, approved)
                   VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, date, created_at, updated_at`
	created := *testimonial
	err := r.storage.pool.QueryRow(ctx, query,
		testimonial.Name, testimonial.Location, testimonial.Rating, testimonial.Text,
		testimonial.Image, testimonial.Approved,
	).Scan(&created.ID, &created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id=$1`
	testimonial, err := scanTestimonial(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return testimonial, nil
}

func (r *testimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE approved=TRUE ORDER BY date DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

func (r *testimonialRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Testimonial, int64, error) {
	where, args, tail := buildListClauses(testimonialCollection, q)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials`+where+tail, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectTestimonials(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func collectTestimonials(rows pgx.Rows) ([]model.Testimonial, error) {
	var result []model.Testimonial
	for rows.Next() {
		testimonial, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *testimonial)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	query := `UPDATE testimonials SET name=$2, location=$3, rating=$4, text=$5, image=$6, updated_at=NOW()
              WHERE id=$1 RETURNING ` + testimonialColumns
	updated, err := scanTestimonial(r.storage.pool.QueryRow(ctx, query,
		testimonial.ID, testimonial.Name, testimonial.Location, testimonial.Rating,
		testimonial.Text, testimonial.Image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *testimonialRepository) SetApproved(ctx context.Context, id int64, approved bool) (*model.Testimonial, error) {
	query := `UPDATE testimonials SET approved=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + testimonialColumns
	updated, err := scanTestimonial(r.storage.pool.QueryRow(ctx, query, id, approved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
