package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)
var _ repository.ItemVariantRepository = (*ItemVariantRepo)(nil)

// ItemTypeRepo implementação de ItemTypeRepository sobre PostgreSQL.
type ItemTypeRepo struct {
	pool *pgxpool.Pool
}

// NewItemTypeRepository constrói o adaptador de persistência para tipos de item.
func NewItemTypeRepository(pool *pgxpool.Pool) *ItemTypeRepo {
	return &ItemTypeRepo{pool: pool}
}

// Create persiste um novo tipo de item.
func (r *ItemTypeRepo) Create(itemType *entity.ItemType) error {
	query := `
		INSERT INTO item_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		itemType.ID, itemType.Name, itemType.CreatedAt, itemType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item type: %w", err)
	}
	return nil
}

// GetByID obtém um tipo de item por ID; nil se ausente.
func (r *ItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	query := `SELECT id, name, created_at, updated_at FROM item_types WHERE id = $1`
	var t entity.ItemType
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return &t, nil
}

// Update atualiza um tipo de item.
func (r *ItemTypeRepo) Update(itemType *entity.ItemType) error {
	query := `UPDATE item_types SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, itemType.ID, itemType.Name, itemType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update item type: %w", err)
	}
	return nil
}

// List lista tipos de item com paginação.
func (r *ItemTypeRepo) List(limit, offset int) ([]*entity.ItemType, error) {
	query := `SELECT id, name, created_at, updated_at FROM item_types ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemType
	for rows.Next() {
		var t entity.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ItemVariantRepo implementação de ItemVariantRepository sobre PostgreSQL.
type ItemVariantRepo struct {
	pool *pgxpool.Pool
}

// NewItemVariantRepository constrói o adaptador de persistência para variações.
func NewItemVariantRepository(pool *pgxpool.Pool) *ItemVariantRepo {
	return &ItemVariantRepo{pool: pool}
}

const variantColumns = "id, item_type_id, size, gender, created_at, updated_at"

// Create persiste uma nova variação.
func (r *ItemVariantRepo) Create(variant *entity.ItemVariant) error {
	query := `
		INSERT INTO item_variants (id, item_type_id, size, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		variant.ID, variant.ItemTypeID, variant.Size, variant.Gender,
		variant.CreatedAt, variant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item variant: %w", err)
	}
	return nil
}

// GetByID obtém uma variação por ID; nil se ausente.
func (r *ItemVariantRepo) GetByID(id string) (*entity.ItemVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM item_variants WHERE id = $1`
	var v entity.ItemVariant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ItemTypeID, &v.Size, &v.Gender, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item variant: %w", err)
	}
	return &v, nil
}

// GetByIDs resolve um lote de ids em uma única consulta (ids ausentes não
// aparecem no resultado).
func (r *ItemVariantRepo) GetByIDs(ids []string) ([]*entity.ItemVariant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + variantColumns + ` FROM item_variants WHERE id = ANY($1)`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get item variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVariant
	for rows.Next() {
		var v entity.ItemVariant
		if err := rows.Scan(&v.ID, &v.ItemTypeID, &v.Size, &v.Gender, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update atualiza uma variação.
func (r *ItemVariantRepo) Update(variant *entity.ItemVariant) error {
	query := `
		UPDATE item_variants SET item_type_id = $2, size = $3, gender = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		variant.ID, variant.ItemTypeID, variant.Size, variant.Gender, variant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item variant: %w", err)
	}
	return nil
}

// List lista variações com paginação.
func (r *ItemVariantRepo) List(limit, offset int) ([]*entity.ItemVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM item_variants ORDER BY item_type_id, size LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVariant
	for rows.Next() {
		var v entity.ItemVariant
		if err := rows.Scan(&v.ID, &v.ItemTypeID, &v.Size, &v.Gender, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
