package youtube

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// Synthetic generates plausible channel data when no API key is configured.
// Titles repeat topic words so keyword grouping has something to group.
type Synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSynthetic creates a generator seeded for reproducible tests.
func NewSynthetic(seed uint64) *Synthetic {
	return &Synthetic{
		rng: rand.New(rand.NewPCG(seed, seed<<1|1)),
		now: time.Now,
	}
}

var titleSuffixes = []string{
	"estratégia completa",
	"resultados reais",
	"passo a passo",
	"análise profunda",
	"estudo de caso",
	"rotina diária",
	"ferramentas essenciais",
	"comparativo definitivo",
}

func (s *Synthetic) SearchChannels(_ context.Context, query, _ string, limit int) ([]ChannelRef, error) {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(query)), " ", "-")
	refs := make([]ChannelRef, 0, limit)
	for i := range limit {
		refs = append(refs, ChannelRef{
			ID:    fmt.Sprintf("synth-%s-%03d", slug, i),
			Name:  fmt.Sprintf("Canal %s %d", query, i+1),
			Topic: query,
		})
	}
	return refs, nil
}

func (s *Synthetic) FetchChannel(_ context.Context, ref ChannelRef) (*model.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ageMonths := 1 + s.rng.IntN(60)
	createdAt := s.now().AddDate(0, -ageMonths, 0)
	videos := int64(10 + s.rng.IntN(490))
	subs := int64(1000 + s.rng.Int64N(2_000_000))

	titles := make([]string, 0, 10)
	for range 10 {
		suffix := titleSuffixes[s.rng.IntN(len(titleSuffixes))]
		titles = append(titles, fmt.Sprintf("%s: %s", capitalize(ref.Topic), suffix))
	}

	return &model.Channel{
		ChannelID:    ref.ID,
		Name:         ref.Name,
		CreatedAt:    createdAt,
		TotalVideos:  videos,
		Subscribers:  subs,
		RecentTitles: titles,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
