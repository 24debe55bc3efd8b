package variant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dentalstore-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]Variant, error)
	Create(ctx context.Context, v Variant) (Variant, error)
	Update(ctx context.Context, id string, params UpdateParams) (Variant, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const variantColumns = `id, product_id, name, sku, price, stock, attributes, image_url, created_at, updated_at`

func scanVariant(row interface{ Scan(...any) error }) (Variant, error) {
	var v Variant
	var attrs []byte
	err := row.Scan(&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock,
		&attrs, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return Variant{}, err
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &v.Attributes); err != nil {
			return Variant{}, fmt.Errorf("decode variant attributes: %w", err)
		}
	}
	return v, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]Variant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+variantColumns+` FROM variants WHERE product_id = $1 ORDER BY created_at ASC`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}

func (r *repository) Create(ctx context.Context, v Variant) (Variant, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateVariant"),
		zap.String("product_id", v.ProductID),
	)

	attrs, err := json.Marshal(v.Attributes)
	if err != nil {
		return Variant{}, fmt.Errorf("encode variant attributes: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO variants (id, product_id, name, sku, price, stock, attributes, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+variantColumns,
		uuid.New().String(), v.ProductID, v.Name, v.SKU, v.Price, v.Stock, attrs, v.ImageURL,
	)

	created, err := scanVariant(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return Variant{}, ErrSKUExists
		}
		log.Error("CreateVariant DB query failed", zap.Error(err))
		return Variant{}, err
	}

	log.Info("CreateVariant success", zap.String("variant_id", created.ID))
	return created, nil
}

func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (Variant, error) {
	set := []string{}
	args := []interface{}{}

	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, val)
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.SKU != nil {
		add("sku", *params.SKU)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.Stock != nil {
		add("stock", *params.Stock)
	}
	if params.Attributes != nil {
		attrs, err := json.Marshal(params.Attributes)
		if err != nil {
			return Variant{}, fmt.Errorf("encode variant attributes: %w", err)
		}
		add("attributes", attrs)
	}
	if params.ImageURL != nil {
		add("image_url", *params.ImageURL)
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE variants SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args)+1, variantColumns,
	)
	args = append(args, id)

	v, err := scanVariant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Variant{}, ErrVariantNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return Variant{}, ErrSKUExists
		}
		return Variant{}, err
	}
	return v, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM variants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrVariantNotFound
	}
	return nil
}
