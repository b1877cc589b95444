package images

import (
	"context"
	"log"

	"github.com/PhabloC/oakio-backend/internal/config"
)

// MultiProvider tenta os provedores em ordem e devolve o primeiro que
// responder; o fallback estático fica sempre por último.
type MultiProvider struct {
	providers []Provider
}

func NewMultiProvider(cfg *config.Config) *MultiProvider {
	return &MultiProvider{
		providers: []Provider{
			NewPexelsProvider(cfg.ImagesAPIURL, cfg.ImagesAPIKey, cfg.ImagesEnabled),
			NewFallbackProvider(),
		},
	}
}

func (m *MultiProvider) GetName() string {
	return "Multi"
}

func (m *MultiProvider) IsEnabled() bool {
	return true
}

func (m *MultiProvider) Search(ctx context.Context, query string) ([]Image, error) {
	for _, p := range m.providers {
		if !p.IsEnabled() {
			continue
		}
		imgs, err := p.Search(ctx, query)
		if err != nil {
			log.Printf("busca de imagens via %s falhou: %v", p.GetName(), err)
			continue
		}
		if len(imgs) > 0 {
			return imgs, nil
		}
	}
	// o fallback nunca erra, mas por via das dúvidas
	return fallbackCatalog, nil
}
