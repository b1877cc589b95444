package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// repositórios em memória para exercitar as regras dos services sem banco

type fakeTransactionRepo struct {
	itens map[uuid.UUID]*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{itens: make(map[uuid.UUID]*models.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *models.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	cp := *tx
	r.itens[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := r.itens[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range r.itens {
		if tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, id uuid.UUID, tx *models.Transaction) error {
	existente, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	cp := *tx
	cp.ID = id
	cp.UserID = existente.UserID
	r.itens[id] = &cp
	return nil
}

func (r *fakeTransactionRepo) SetPaga(_ context.Context, id uuid.UUID, paga bool) error {
	tx, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	tx.Paga = paga
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.itens, id)
	return nil
}

type fakeMetaRepo struct {
	itens map[uuid.UUID]*models.Meta
}

func newFakeMetaRepo() *fakeMetaRepo {
	return &fakeMetaRepo{itens: make(map[uuid.UUID]*models.Meta)}
}

func (r *fakeMetaRepo) Create(_ context.Context, meta *models.Meta) error {
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	cp := *meta
	r.itens[meta.ID] = &cp
	return nil
}

func (r *fakeMetaRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Meta, error) {
	m, ok := r.itens[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMetaRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]models.Meta, error) {
	var out []models.Meta
	for _, m := range r.itens {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMetaRepo) Update(_ context.Context, id uuid.UUID, update *models.MetaUpdate) error {
	m, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if update.Title != nil {
		m.Title = *update.Title
	}
	if update.TargetValue != nil {
		m.TargetValue = *update.TargetValue
	}
	if update.Deadline != nil {
		m.Deadline = update.Deadline
	}
	if update.Category != nil {
		m.Category = *update.Category
	}
	if update.ImageURL != nil {
		m.ImageURL = update.ImageURL
	}
	return nil
}

func (r *fakeMetaRepo) AddValue(_ context.Context, id uuid.UUID, valor decimal.Decimal) error {
	m, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	m.CurrentValue = m.CurrentValue.Add(valor)
	return nil
}

func (r *fakeMetaRepo) SetCompleted(_ context.Context, id uuid.UUID, completed bool, completedAt *time.Time) error {
	m, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	m.Completed = completed
	m.CompletedAt = completedAt
	return nil
}

func (r *fakeMetaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.itens, id)
	return nil
}

type fakeDividaRepo struct {
	itens map[uuid.UUID]*models.Divida
}

func newFakeDividaRepo() *fakeDividaRepo {
	return &fakeDividaRepo{itens: make(map[uuid.UUID]*models.Divida)}
}

func (r *fakeDividaRepo) Create(_ context.Context, divida *models.Divida) error {
	if divida.ID == uuid.Nil {
		divida.ID = uuid.New()
	}
	cp := *divida
	r.itens[divida.ID] = &cp
	return nil
}

func (r *fakeDividaRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Divida, error) {
	d, ok := r.itens[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDividaRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]models.Divida, error) {
	var out []models.Divida
	for _, d := range r.itens {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDividaRepo) Update(_ context.Context, id uuid.UUID, update *models.DividaUpdate) error {
	d, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if update.Title != nil {
		d.Title = *update.Title
	}
	if update.TotalValue != nil {
		d.TotalValue = *update.TotalValue
	}
	if update.DueDate != nil {
		d.DueDate = update.DueDate
	}
	if update.Creditor != nil {
		d.Creditor = *update.Creditor
	}
	if update.Category != nil {
		d.Category = *update.Category
	}
	if update.Description != nil {
		d.Description = *update.Description
	}
	return nil
}

func (r *fakeDividaRepo) SetPagamento(_ context.Context, id uuid.UUID, paidValue decimal.Decimal, isPaid bool, paidAt *time.Time) error {
	d, ok := r.itens[id]
	if !ok {
		return pgx.ErrNoRows
	}
	d.PaidValue = paidValue
	d.IsPaid = isPaid
	d.PaidAt = paidAt
	return nil
}

func (r *fakeDividaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.itens, id)
	return nil
}
