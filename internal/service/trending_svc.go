package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// fallbackTopics is served whenever the upstream is unreachable; the caller
// still gets HTTP 200 and learns about the failure via Source/Error.
var fallbackTopics = []model.TrendingTopic{
	{Title: "renda extra online", Value: 95, Category: "finanças"},
	{Title: "inteligência artificial", Value: 92, Category: "tecnologia"},
	{Title: "receitas rápidas", Value: 88, Category: "culinária"},
	{Title: "treino em casa", Value: 85, Category: "fitness"},
	{Title: "minimalismo", Value: 80, Category: "estilo de vida"},
}

// TrendingService fetches per-region trending topics from a configurable
// upstream, caching snapshots and degrading to a fixed fallback list.
type TrendingService struct {
	upstreamURL string
	httpc       *http.Client
	cache       *CacheService
}

func NewTrendingService(upstreamURL string, cache *CacheService) *TrendingService {
	return &TrendingService{
		upstreamURL: upstreamURL,
		httpc:       &http.Client{Timeout: 10 * time.Second},
		cache:       cache,
	}
}

// Topics returns the trending snapshot for a region. Upstream failures are
// not errors: the fallback list is returned with Source set to "fallback".
func (s *TrendingService) Topics(ctx context.Context, region string) *model.TrendingResponse {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = "BR"
	}

	if s.cache != nil {
		data, err := s.cache.GetTrending(ctx, region)
		if err != nil {
			log.Printf("cache: trending get error: %v", err)
		} else if data != nil {
			var cached model.TrendingResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached
			}
		}
	}

	resp, err := s.fetchUpstream(ctx, region)
	if err != nil {
		log.Printf("trending: upstream error for %s: %v", region, err)
		return &model.TrendingResponse{
			Topics: fallbackTopics,
			Region: region,
			Source: "fallback",
			Error:  err.Error(),
		}
	}

	if s.cache != nil {
		if err := s.cache.SetTrending(ctx, region, resp); err != nil {
			log.Printf("cache: trending set error: %v", err)
		}
	}
	return resp
}

func (s *TrendingService) fetchUpstream(ctx context.Context, region string) (*model.TrendingResponse, error) {
	if s.upstreamURL == "" {
		return nil, fmt.Errorf("trending: upstream não configurado")
	}

	u, err := url.Parse(s.upstreamURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("region", region)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trending: upstream respondeu %d", httpResp.StatusCode)
	}

	var out model.TrendingResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, err
	}
	out.Region = region
	if out.Source == "" {
		out.Source = "upstream"
	}
	return &out, nil
}
