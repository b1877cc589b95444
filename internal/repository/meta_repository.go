package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type MetaRepository interface {
	Create(ctx context.Context, meta *models.Meta) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Meta, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Meta, error)
	Update(ctx context.Context, id uuid.UUID, update *models.MetaUpdate) error
	AddValue(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool, completedAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type metaRepository struct {
	pool *pgxpool.Pool
}

func NewMetaRepository(pool *pgxpool.Pool) MetaRepository {
	return &metaRepository{pool: pool}
}

const metaColumns = `id, user_id, title, target_value, current_value, deadline, category, image_url, completed, completed_at, created_at, updated_at`

func (r *metaRepository) Create(ctx context.Context, meta *models.Meta) error {
	query := `
		INSERT INTO metas (id, user_id, title, target_value, current_value, deadline, category, image_url, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	now := time.Now()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		meta.ID, meta.UserID, meta.Title, meta.TargetValue, meta.CurrentValue,
		meta.Deadline, meta.Category, meta.ImageURL, meta.Completed,
		meta.CreatedAt, meta.UpdatedAt,
	)
	return err
}

func (r *metaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Meta, error) {
	query := `SELECT ` + metaColumns + ` FROM metas WHERE id = $1`

	var m models.Meta
	err := GetTxOrPool(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&m.ID, &m.UserID, &m.Title, &m.TargetValue, &m.CurrentValue,
		&m.Deadline, &m.Category, &m.ImageURL, &m.Completed, &m.CompletedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metaRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Meta, error) {
	query := `SELECT ` + metaColumns + ` FROM metas WHERE user_id = $1 ORDER BY completed, deadline NULLS LAST, created_at DESC`

	rows, err := GetTxOrPool(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []models.Meta
	for rows.Next() {
		var m models.Meta
		err := rows.Scan(
			&m.ID, &m.UserID, &m.Title, &m.TargetValue, &m.CurrentValue,
			&m.Deadline, &m.Category, &m.ImageURL, &m.Completed, &m.CompletedAt,
			&m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

func (r *metaRepository) Update(ctx context.Context, id uuid.UUID, update *models.MetaUpdate) error {
	query := `
		UPDATE metas SET
			title = COALESCE($2, title),
			target_value = COALESCE($3, target_value),
			deadline = COALESCE($4, deadline),
			category = COALESCE($5, category),
			image_url = COALESCE($6, image_url),
			updated_at = $7
		WHERE id = $1
	`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		id, update.Title, update.TargetValue, update.Deadline,
		update.Category, update.ImageURL, time.Now(),
	)
	return err
}

// AddValue incrementa o valor atual. Não mexe em completed: a conclusão
// da meta é sempre decisão explícita do usuário.
func (r *metaRepository) AddValue(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error {
	query := `UPDATE metas SET current_value = current_value + $2, updated_at = $3 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, valor, time.Now())
	return err
}

func (r *metaRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool, completedAt *time.Time) error {
	query := `UPDATE metas SET completed = $2, completed_at = $3, updated_at = $4 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, completed, completedAt, time.Now())
	return err
}

func (r *metaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM metas WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id)
	return err
}
