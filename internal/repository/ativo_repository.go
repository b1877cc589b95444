package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

type AtivoRepository interface {
	Create(ctx context.Context, ativo *models.Ativo) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ativo, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ativo, error)
	Update(ctx context.Context, id uuid.UUID, update *models.AtivoUpdate) error
	AddAporte(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error
	SetValorAtual(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error
	ResetInvestimentos(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ativoRepository struct {
	pool *pgxpool.Pool
}

func NewAtivoRepository(pool *pgxpool.Pool) AtivoRepository {
	return &ativoRepository{pool: pool}
}

const ativoColumns = `id, user_id, nome, ticker, tipo, valor_investido, valor_atual, quantidade, data_compra, taxa_selic_anual, emergencia, created_at, updated_at`

func (r *ativoRepository) Create(ctx context.Context, ativo *models.Ativo) error {
	query := `
		INSERT INTO ativos (id, user_id, nome, ticker, tipo, valor_investido, valor_atual, quantidade, data_compra, taxa_selic_anual, emergencia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if ativo.ID == uuid.Nil {
		ativo.ID = uuid.New()
	}
	now := time.Now()
	ativo.CreatedAt = now
	ativo.UpdatedAt = now

	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		ativo.ID, ativo.UserID, ativo.Nome, ativo.Ticker, ativo.Tipo,
		ativo.ValorInvestido, ativo.ValorAtual, ativo.Quantidade,
		ativo.DataCompra, ativo.TaxaSelicAnual, ativo.Emergencia,
		ativo.CreatedAt, ativo.UpdatedAt,
	)
	return err
}

func (r *ativoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ativo, error) {
	query := `SELECT ` + ativoColumns + ` FROM ativos WHERE id = $1`

	var a models.Ativo
	err := GetTxOrPool(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.Nome, &a.Ticker, &a.Tipo,
		&a.ValorInvestido, &a.ValorAtual, &a.Quantidade,
		&a.DataCompra, &a.TaxaSelicAnual, &a.Emergencia,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ativoRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ativo, error) {
	query := `SELECT ` + ativoColumns + ` FROM ativos WHERE user_id = $1 ORDER BY tipo, nome`

	rows, err := GetTxOrPool(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ativos []models.Ativo
	for rows.Next() {
		var a models.Ativo
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Nome, &a.Ticker, &a.Tipo,
			&a.ValorInvestido, &a.ValorAtual, &a.Quantidade,
			&a.DataCompra, &a.TaxaSelicAnual, &a.Emergencia,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ativos = append(ativos, a)
	}
	return ativos, rows.Err()
}

func (r *ativoRepository) Update(ctx context.Context, id uuid.UUID, update *models.AtivoUpdate) error {
	query := `
		UPDATE ativos SET
			nome = COALESCE($2, nome),
			ticker = COALESCE($3, ticker),
			tipo = COALESCE($4, tipo),
			valor_atual = COALESCE($5, valor_atual),
			quantidade = COALESCE($6, quantidade),
			taxa_selic_anual = COALESCE($7, taxa_selic_anual),
			emergencia = COALESCE($8, emergencia),
			updated_at = $9
		WHERE id = $1
	`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query,
		id, update.Nome, update.Ticker, update.Tipo, update.ValorAtual,
		update.Quantidade, update.TaxaSelicAnual, update.Emergencia, time.Now(),
	)
	return err
}

// AddAporte soma o aporte ao capital investido e ao valor de mercado.
func (r *ativoRepository) AddAporte(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error {
	query := `
		UPDATE ativos SET
			valor_investido = valor_investido + $2,
			valor_atual = valor_atual + $2,
			updated_at = $3
		WHERE id = $1
	`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, valor, time.Now())
	return err
}

func (r *ativoRepository) SetValorAtual(ctx context.Context, id uuid.UUID, valor decimal.Decimal) error {
	query := `UPDATE ativos SET valor_atual = $2, updated_at = $3 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, valor, time.Now())
	return err
}

// ResetInvestimentos zera só o capital aportado; o valor de mercado fica.
func (r *ativoRepository) ResetInvestimentos(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE ativos SET valor_investido = 0, updated_at = $2 WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id, time.Now())
	return err
}

func (r *ativoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ativos WHERE id = $1`
	_, err := GetTxOrPool(ctx, r.pool).Exec(ctx, query, id)
	return err
}
