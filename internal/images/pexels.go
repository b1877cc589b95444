package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PexelsProvider implementa Provider sobre a API de busca do Pexels.
type PexelsProvider struct {
	baseURL    string
	apiKey     string
	enabled    bool
	httpClient *http.Client
}

func NewPexelsProvider(baseURL, apiKey string, enabled bool) *PexelsProvider {
	return &PexelsProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		enabled: enabled && apiKey != "",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *PexelsProvider) GetName() string {
	return "Pexels"
}

func (p *PexelsProvider) IsEnabled() bool {
	return p.enabled
}

type pexelsSearchResponse struct {
	Photos []struct {
		ID  int    `json:"id"`
		Alt string `json:"alt"`
		Src struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
			Small  string `json:"small"`
		} `json:"src"`
	} `json:"photos"`
}

func (p *PexelsProvider) Search(ctx context.Context, query string) ([]Image, error) {
	if !p.enabled {
		return nil, fmt.Errorf("pexels provider disabled")
	}

	endpoint := fmt.Sprintf("%s/search?query=%s&per_page=12", p.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels returned status %d", resp.StatusCode)
	}

	var result pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("pexels decode failed: %w", err)
	}

	imgs := make([]Image, 0, len(result.Photos))
	for _, photo := range result.Photos {
		imgs = append(imgs, Image{
			ID:        strconv.Itoa(photo.ID),
			URL:       photo.Src.Large,
			Thumbnail: photo.Src.Medium,
			Alt:       photo.Alt,
		})
	}
	return imgs, nil
}
