package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/config"
	"github.com/PhabloC/oakio-backend/internal/finance"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

var ErrInvalidTargetValue = errors.New("target value must be greater than zero")

type MetaService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.MetaCreate) (*models.Meta, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Meta, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.MetaUpdate) (*models.Meta, error)
	AddMoney(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Meta, error)
	Complete(ctx context.Context, userID, id uuid.UUID) (*models.Meta, error)
	Reopen(ctx context.Context, userID, id uuid.UUID) (*models.Meta, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type metaService struct {
	metaRepo   repository.MetaRepository
	thresholds finance.FeasibilityThresholds
}

func NewMetaService(metaRepo repository.MetaRepository, cfg *config.Config) MetaService {
	return &metaService{
		metaRepo: metaRepo,
		thresholds: finance.FeasibilityThresholds{
			Viavel:       cfg.MetaLimiteViavel,
			Comprometida: cfg.MetaLimiteComprometida,
		},
	}
}

func (s *metaService) Create(ctx context.Context, userID uuid.UUID, input *models.MetaCreate) (*models.Meta, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.TargetValue.Sign() <= 0 {
		return nil, ErrInvalidTargetValue
	}

	meta := &models.Meta{
		UserID:       userID,
		Title:        input.Title,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Deadline:     input.Deadline,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
	}
	if err := s.metaRepo.Create(ctx, meta); err != nil {
		return nil, err
	}

	s.enrichMeta(meta, time.Now())
	return meta, nil
}

func (s *metaService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Meta, error) {
	metas, err := s.metaRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	for i := range metas {
		s.enrichMeta(&metas[i], agora)
	}
	return metas, nil
}

func (s *metaService) Update(ctx context.Context, userID, id uuid.UUID, update *models.MetaUpdate) (*models.Meta, error) {
	if _, err := s.ownedMeta(ctx, userID, id); err != nil {
		return nil, err
	}
	if update.TargetValue != nil && update.TargetValue.Sign() <= 0 {
		return nil, ErrInvalidTargetValue
	}

	if err := s.metaRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

// AddMoney incrementa o valor guardado. Nunca marca a meta como concluída,
// mesmo passando de 100%: a conclusão é sempre um clique do usuário.
func (s *metaService) AddMoney(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Meta, error) {
	if valor.Sign() <= 0 {
		return nil, ErrInvalidValue
	}
	if _, err := s.ownedMeta(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.metaRepo.AddValue(ctx, id, valor); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *metaService) Complete(ctx context.Context, userID, id uuid.UUID) (*models.Meta, error) {
	if _, err := s.ownedMeta(ctx, userID, id); err != nil {
		return nil, err
	}

	agora := time.Now()
	if err := s.metaRepo.SetCompleted(ctx, id, true, &agora); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *metaService) Reopen(ctx context.Context, userID, id uuid.UUID) (*models.Meta, error) {
	if _, err := s.ownedMeta(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.metaRepo.SetCompleted(ctx, id, false, nil); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *metaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedMeta(ctx, userID, id); err != nil {
		return err
	}
	return s.metaRepo.Delete(ctx, id)
}

func (s *metaService) reload(ctx context.Context, id uuid.UUID) (*models.Meta, error) {
	meta, err := s.metaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enrichMeta(meta, time.Now())
	return meta, nil
}

func (s *metaService) ownedMeta(ctx context.Context, userID, id uuid.UUID) (*models.Meta, error) {
	meta, err := s.metaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.UserID != userID {
		return nil, ErrNotOwner
	}
	return meta, nil
}

func (s *metaService) enrichMeta(m *models.Meta, agora time.Time) {
	m.Progress = finance.ProgressoMeta(*m)
	m.MonthsRemaining = finance.MesesRestantes(m.Deadline, agora)
	m.RequiredMonthly = finance.AporteMensalNecessario(*m, agora)
	m.Feasibility = finance.ClassificarMeta(*m, agora, s.thresholds)
	m.SuggestCompleted = !m.Completed && m.Progress >= 100
}
