package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Murugadoss7/dental-app/internal/domain"
)

type CatalogRepo struct {
	db DB
}

func NewCatalogRepository(db DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Create(ctx context.Context, item domain.DentalCatalogItem) (*domain.DentalCatalogItem, error) {
	query := `
		INSERT INTO dental_catalog (id, type, name, category, is_common, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at
	`

	item.ID = uuid.New()
	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		item.ID,
		item.Type,
		item.Name,
		item.Category,
		item.IsCommon,
		now,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert catalog item: %w", err)
	}

	return &item, nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DentalCatalogItem, error) {
	query := `SELECT id, type, name, category, is_common, created_at, updated_at FROM dental_catalog WHERE id = $1`

	var item domain.DentalCatalogItem
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Type, &item.Name, &item.Category, &item.IsCommon, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select catalog item: %w", err)
	}

	return &item, nil
}

func (r *CatalogRepo) Update(ctx context.Context, item domain.DentalCatalogItem) error {
	query := `
		UPDATE dental_catalog
		SET type = $1, name = $2, category = $3, is_common = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query, item.Type, item.Name, item.Category, item.IsCommon, time.Now().UTC(), item.ID)
	if err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM dental_catalog WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.DentalCatalogItem, error) {
	var conditions []string
	var args []any

	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.IsCommon != nil {
		args = append(args, *filter.IsCommon)
		conditions = append(conditions, fmt.Sprintf("is_common = $%d", len(args)))
	}

	query := `SELECT id, type, name, category, is_common, created_at, updated_at FROM dental_catalog`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY category, name`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select catalog items: %w", err)
	}
	defer rows.Close()

	var items []domain.DentalCatalogItem
	for rows.Next() {
		var item domain.DentalCatalogItem
		if err := rows.Scan(&item.ID, &item.Type, &item.Name, &item.Category, &item.IsCommon, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog items: %w", err)
	}

	return items, nil
}
