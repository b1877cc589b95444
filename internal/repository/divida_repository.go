package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type DividaRepository interface {
	Create(ctx context.Context, divida *models.Divida) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Divida, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Divida, error)
	Update(ctx context.Context, id uuid.UUID, update *models.DividaUpdate) error
	SetPagamento(ctx context.Context, id uuid.UUID, paidValue decimal.Decimal, isPaid bool, paidAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dividaRepository struct {
	pool *pgxpool.Pool
}

func NewDividaRepository(pool *pgxpool.Pool) DividaRepository {
	return &dividaRepository{pool: pool}
}

const dividaColumns = `id, user_id, title, total_value, paid_value, due_date, creditor, category, description, is_paid, paid_at, created_at, updated_at`

func (r *dividaRepository) Create(ctx context.Context, divida *models.Divida) error {
	query := `
		INSERT INTO dividas (id, user_id, title, total_value, paid_value, due_date, creditor, category, description, is_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if divida.ID == uuid.Nil {
		divida.ID = uuid.New()
	}
	now := time.Now()
	divida.CreatedAt = now
	divida.UpdatedAt = now

	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		divida.ID, divida.UserID, divida.Title, divida.TotalValue, divida.PaidValue,
		divida.DueDate, divida.Creditor, divida.Category, divida.Description,
		divida.IsPaid, divida.CreatedAt, divida.UpdatedAt,
	)
	return err
}

func (r *dividaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Divida, error) {
	query := `SELECT ` + dividaColumns + ` FROM dividas WHERE id = $1`

	var d models.Divida
	err := GetTxOrPool(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.Title, &d.TotalValue, &d.PaidValue,
		&d.DueDate, &d.Creditor, &d.Category, &d.Description,
		&d.IsPaid, &d.PaidAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dividaRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Divida, error) {
	query := `SELECT ` + dividaColumns + ` FROM dividas WHERE user_id = $1 ORDER BY is_paid, due_date NULLS LAST, created_at DESC`

	rows, err := GetTxOrPool(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dividas []models.Divida
	for rows.Next() {
		var d models.Divida
		err := rows.Scan(
			&d.ID, &d.UserID, &d.Title, &d.TotalValue, &d.PaidValue,
			&d.DueDate, &d.Creditor, &d.Category, &d.Description,
			&d.IsPaid, &d.PaidAt, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		dividas = append(dividas, d)
	}
	return dividas, rows.Err()
}

func (r *dividaRepository) Update(ctx context.Context, id uuid.UUID, update *models.DividaUpdate) error {
	query := `
		UPDATE dividas SET
			title = COALESCE($2, title),
			total_value = COALESCE($3, total_value),
			due_date = COALESCE($4, due_date),
			creditor = COALESCE($5, creditor),
			category = COALESCE($6, category),
			description = COALESCE($7, description),
			updated_at = $8
		WHERE id = $1
	`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		id, update.Title, update.TotalValue, update.DueDate,
		update.Creditor, update.Category, update.Description, time.Now(),
	)
	return err
}

// SetPagamento grava o estado de pagamento já decidido pelo service
// (valor pago, quitação e carimbo calculados pelas regras do domínio).
func (r *dividaRepository) SetPagamento(ctx context.Context, id uuid.UUID, paidValue decimal.Decimal, isPaid bool, paidAt *time.Time) error {
	query := `UPDATE dividas SET paid_value = $2, is_paid = $3, paid_at = $4, updated_at = $5 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, paidValue, isPaid, paidAt, time.Now())
	return err
}

func (r *dividaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM dividas WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id)
	return err
}
