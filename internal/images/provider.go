// Package images integra a busca de imagens de fundo para as metas.
// Colaborador opcional: quando a API externa falha ou está desligada,
// cai no catálogo estático — nunca bloqueia o fluxo das metas.
package images

import (
	"context"
)

// Image é o resultado normalizado da busca.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Alt       string `json:"alt"`
}

// Provider busca imagens por termo livre.
type Provider interface {
	GetName() string
	IsEnabled() bool
	Search(ctx context.Context, query string) ([]Image, error)
}
