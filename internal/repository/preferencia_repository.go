package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type PreferenciaRepository interface {
	// Get devolve as preferências do usuário; defaults quando nunca salvou.
	Get(ctx context.Context, userID uuid.UUID) (*models.Preferencias, error)
	Upsert(ctx context.Context, prefs *models.Preferencias) error
}

type preferenciaRepository struct {
	pool *pgxpool.Pool
}

func NewPreferenciaRepository(pool *pgxpool.Pool) PreferenciaRepository {
	return &preferenciaRepository{pool: pool}
}

func (r *preferenciaRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Preferencias, error) {
	query := `
		SELECT user_id, gasto_mensal_manual, reserva_meses, valores_ocultos, updated_at
		FROM preferencias
		WHERE user_id = $1
	`

	var p models.Preferencias
	err := GetTxOrPool(ctx, r.pool).QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.GastoMensalManual, &p.ReservaMeses, &p.ValoresOcultos, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultPreferencias(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *preferenciaRepository) Upsert(ctx context.Context, prefs *models.Preferencias) error {
	query := `
		INSERT INTO preferencias (user_id, gasto_mensal_manual, reserva_meses, valores_ocultos, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET
			gasto_mensal_manual = EXCLUDED.gasto_mensal_manual,
			reserva_meses = EXCLUDED.reserva_meses,
			valores_ocultos = EXCLUDED.valores_ocultos,
			updated_at = EXCLUDED.updated_at
	`

	prefs.UpdatedAt = time.Now()
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		prefs.UserID, prefs.GastoMensalManual, prefs.ReservaMeses,
		prefs.ValoresOcultos, prefs.UpdatedAt,
	)
	return err
}
