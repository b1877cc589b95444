package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type PatrimonioRepository interface {
	// Upsert grava o snapshot do mês; conflito em (user_id, mes, ano)
	// sobrescreve o total — uma linha por mês por usuário.
	Upsert(ctx context.Context, snapshot *models.PatrimonioSnapshot) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.PatrimonioSnapshot, error)
}

type patrimonioRepository struct {
	pool *pgxpool.Pool
}

func NewPatrimonioRepository(pool *pgxpool.Pool) PatrimonioRepository {
	return &patrimonioRepository{pool: pool}
}

func (r *patrimonioRepository) Upsert(ctx context.Context, snapshot *models.PatrimonioSnapshot) error {
	query := `
		INSERT INTO patrimonio_historico (id, user_id, mes, ano, total_patrimonio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, mes, ano)
		DO UPDATE SET total_patrimonio = EXCLUDED.total_patrimonio, updated_at = EXCLUDED.updated_at
	`

	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	now := time.Now()
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		snapshot.ID, snapshot.UserID, snapshot.Mes, snapshot.Ano,
		snapshot.TotalPatrimonio, snapshot.CreatedAt, snapshot.UpdatedAt,
	)
	return err
}

func (r *patrimonioRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.PatrimonioSnapshot, error) {
	query := `
		SELECT id, user_id, mes, ano, total_patrimonio, created_at, updated_at
		FROM patrimonio_historico
		WHERE user_id = $1
		ORDER BY ano, created_at
	`

	rows, err := GetTxOrPool(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.PatrimonioSnapshot
	for rows.Next() {
		var s models.PatrimonioSnapshot
		err := rows.Scan(&s.ID, &s.UserID, &s.Mes, &s.Ano, &s.TotalPatrimonio, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
