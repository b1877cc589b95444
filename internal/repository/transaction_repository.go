package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, tx *models.Transaction) error
	SetPaga(ctx context.Context, id uuid.UUID, paga bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

const transactionColumns = `id, user_id, title, value, type, method, date, month, category, description, paga, created_at, updated_at`

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, title, value, type, method, date, month, category, description, paga, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		tx.ID, tx.UserID, tx.Title, tx.Value, tx.Type, tx.Method,
		tx.Date, tx.Month, tx.Category, tx.Description, tx.Paga,
		tx.CreatedAt, tx.UpdatedAt,
	)
	return err
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var tx models.Transaction
	err := GetTxOrPool(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&tx.ID, &tx.UserID, &tx.Title, &tx.Value, &tx.Type, &tx.Method,
		&tx.Date, &tx.Month, &tx.Category, &tx.Description, &tx.Paga,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := GetTxOrPool(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Title, &tx.Value, &tx.Type, &tx.Method,
			&tx.Date, &tx.Month, &tx.Category, &tx.Description, &tx.Paga,
			&tx.CreatedAt, &tx.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Update grava a transação inteira (o form de edição substitui todos os campos).
func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, tx *models.Transaction) error {
	query := `
		UPDATE transactions SET
			title = $2,
			value = $3,
			type = $4,
			method = $5,
			date = $6,
			month = $7,
			category = $8,
			description = $9,
			updated_at = $10
		WHERE id = $1
	`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		id, tx.Title, tx.Value, tx.Type, tx.Method,
		tx.Date, tx.Month, tx.Category, tx.Description, time.Now(),
	)
	return err
}

func (r *transactionRepository) SetPaga(ctx context.Context, id uuid.UUID, paga bool) error {
	query := `UPDATE transactions SET paga = $2, updated_at = $3 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, paga, time.Now())
	return err
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id)
	return err
}
