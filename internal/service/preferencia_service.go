package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

var ErrInvalidReservaMeses = errors.New("reserva_meses must be 6 or 12")

type PreferenciaService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Preferencias, error)
	Update(ctx context.Context, userID uuid.UUID, update *models.PreferenciasUpdate) (*models.Preferencias, error)
}

type preferenciaService struct {
	preferenciaRepo repository.PreferenciaRepository
}

func NewPreferenciaService(preferenciaRepo repository.PreferenciaRepository) PreferenciaService {
	return &preferenciaService{preferenciaRepo: preferenciaRepo}
}

func (s *preferenciaService) Get(ctx context.Context, userID uuid.UUID) (*models.Preferencias, error) {
	return s.preferenciaRepo.Get(ctx, userID)
}

func (s *preferenciaService) Update(ctx context.Context, userID uuid.UUID, update *models.PreferenciasUpdate) (*models.Preferencias, error) {
	prefs, err := s.preferenciaRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.GastoMensalManual != nil {
		if update.GastoMensalManual.Sign() < 0 {
			return nil, ErrInvalidValue
		}
		prefs.GastoMensalManual = *update.GastoMensalManual
	}
	if update.ReservaMeses != nil {
		if *update.ReservaMeses != 6 && *update.ReservaMeses != 12 {
			return nil, ErrInvalidReservaMeses
		}
		prefs.ReservaMeses = *update.ReservaMeses
	}
	if update.ValoresOcultos != nil {
		prefs.ValoresOcultos = *update.ValoresOcultos
	}

	if err := s.preferenciaRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
