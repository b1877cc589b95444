package service

import (
	"context"

	"github.com/PhabloC/oakio-backend/internal/images"
)

type ImagemService interface {
	Search(ctx context.Context, query string) ([]images.Image, error)
}

type imagemService struct {
	provider *images.MultiProvider
}

func NewImagemService(provider *images.MultiProvider) ImagemService {
	return &imagemService{provider: provider}
}

func (s *imagemService) Search(ctx context.Context, query string) ([]images.Image, error) {
	return s.provider.Search(ctx, query)
}
