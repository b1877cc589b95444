package images

import (
	"context"
	"strings"
)

// catálogo estático usado quando a API externa está fora do ar ou sem chave
var fallbackCatalog = []Image{
	{ID: "viagem", URL: "https://images.pexels.com/photos/346885/pexels-photo-346885.jpeg", Thumbnail: "https://images.pexels.com/photos/346885/pexels-photo-346885.jpeg?w=400", Alt: "viagem praia"},
	{ID: "casa", URL: "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg", Thumbnail: "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg?w=400", Alt: "casa própria"},
	{ID: "carro", URL: "https://images.pexels.com/photos/170811/pexels-photo-170811.jpeg", Thumbnail: "https://images.pexels.com/photos/170811/pexels-photo-170811.jpeg?w=400", Alt: "carro novo"},
	{ID: "estudos", URL: "https://images.pexels.com/photos/207692/pexels-photo-207692.jpeg", Thumbnail: "https://images.pexels.com/photos/207692/pexels-photo-207692.jpeg?w=400", Alt: "educação"},
	{ID: "aposentadoria", URL: "https://images.pexels.com/photos/1288484/pexels-photo-1288484.jpeg", Thumbnail: "https://images.pexels.com/photos/1288484/pexels-photo-1288484.jpeg?w=400", Alt: "aposentadoria"},
	{ID: "reserva", URL: "https://images.pexels.com/photos/259027/pexels-photo-259027.jpeg", Thumbnail: "https://images.pexels.com/photos/259027/pexels-photo-259027.jpeg?w=400", Alt: "reserva de emergência"},
	{ID: "casamento", URL: "https://images.pexels.com/photos/169198/pexels-photo-169198.jpeg", Thumbnail: "https://images.pexels.com/photos/169198/pexels-photo-169198.jpeg?w=400", Alt: "casamento"},
	{ID: "tecnologia", URL: "https://images.pexels.com/photos/18105/pexels-photo.jpg", Thumbnail: "https://images.pexels.com/photos/18105/pexels-photo.jpg?w=400", Alt: "tecnologia"},
}

// FallbackProvider responde do catálogo local, sempre disponível.
type FallbackProvider struct{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

func (p *FallbackProvider) GetName() string {
	return "Fallback"
}

func (p *FallbackProvider) IsEnabled() bool {
	return true
}

// Search filtra o catálogo pelo termo; sem match devolve tudo,
// para a galeria nunca vir vazia.
func (p *FallbackProvider) Search(_ context.Context, query string) ([]Image, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return fallbackCatalog, nil
	}

	var matches []Image
	for _, img := range fallbackCatalog {
		if strings.Contains(strings.ToLower(img.Alt), query) || strings.Contains(img.ID, query) {
			matches = append(matches, img)
		}
	}
	if len(matches) == 0 {
		return fallbackCatalog, nil
	}
	return matches, nil
}
