package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/youtube"
)

// Entry-window thresholds: a market is "porta aberta" while it has at most
// openMaxCompetitors channels averaging at most openMaxAgeMonths of age.
const (
	openMaxCompetitors = 10
	openMaxAgeMonths   = 3.0
	daysPerMonth       = 30

	// Below this competitor count the direct-keyword strategy still works;
	// above it titles must differentiate via micro-subnichos.
	directKeywordMaxCompetitors = 5

	ageSampleSize = 5
)

// CompetitionService compares competitor saturation for one subnicho across
// languages and recommends the least-saturated entry point.
type CompetitionService struct {
	src   youtube.Source
	cache *CacheService
	now   func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCompetitionService creates the comparator. src may be nil, in which
// case snapshots are simulated.
func NewCompetitionService(src youtube.Source, cache *CacheService, seed uint64) *CompetitionService {
	return &CompetitionService{
		src:   src,
		cache: cache,
		now:   time.Now,
		rng:   rand.New(rand.NewPCG(seed, seed<<1|1)),
	}
}

// Compare builds one snapshot per language, classifies each entry window
// and recommends the best language. Output is never empty for a non-empty
// language list. Each snapshot keeps the caller's language label; rejecting
// unsupported codes is the handler's job.
func (s *CompetitionService) Compare(ctx context.Context, subnicho string, languages []string, maxVideos int) ([]model.ComparisonData, *model.RecommendationData, error) {
	if maxVideos <= 0 {
		maxVideos = 20
	}

	comparisons := make([]model.ComparisonData, 0, len(languages))
	for _, language := range languages {
		lang := strings.ToLower(strings.TrimSpace(language))
		snap, err := s.snapshot(ctx, subnicho, lang, maxVideos)
		if err != nil {
			return nil, nil, err
		}
		comparisons = append(comparisons, model.ComparisonData{
			CompetitionData: *snap,
			Entry:           ClassifyEntry(snap.Competitors, snap.AvgChannelAgeMonths),
		})
	}

	SortComparisons(comparisons)
	rec := Recommend(comparisons)
	return comparisons, rec, nil
}

func (s *CompetitionService) snapshot(ctx context.Context, subnicho, lang string, maxVideos int) (*model.CompetitionData, error) {
	cacheKey := subnicho + ":" + lang
	if s.cache != nil {
		data, err := s.cache.GetCompetition(ctx, cacheKey)
		if err != nil {
			log.Printf("cache: competition get error: %v", err)
		} else if data != nil {
			var cached model.CompetitionData
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var snap *model.CompetitionData
	if s.src != nil {
		real, err := s.measure(ctx, subnicho, lang, maxVideos)
		if err != nil {
			return nil, err
		}
		snap = real
	} else {
		snap = s.simulate(lang)
	}

	if s.cache != nil {
		if err := s.cache.SetCompetition(ctx, cacheKey, snap); err != nil {
			log.Printf("cache: competition set error: %v", err)
		}
	}
	return snap, nil
}

// measure counts searched competitor channels and estimates their average
// age from a small fetched sample. Fetch failures shrink the sample instead
// of failing the snapshot.
func (s *CompetitionService) measure(ctx context.Context, subnicho, lang string, maxVideos int) (*model.CompetitionData, error) {
	refs, err := s.src.SearchChannels(ctx, subnicho, lang, maxVideos)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var ageSum float64
	sampled := 0
	for _, ref := range refs {
		if sampled >= ageSampleSize {
			break
		}
		ch, err := s.src.FetchChannel(ctx, ref)
		if err != nil {
			continue
		}
		ageSum += float64(MonthsBetween(ch.CreatedAt, now))
		sampled++
	}

	var avgAge float64
	if sampled > 0 {
		avgAge = ageSum / float64(sampled)
	}

	return &model.CompetitionData{
		Language:            lang,
		Competitors:         len(refs),
		AvgChannelAgeMonths: avgAge,
		AvgTopViews:         s.randTopViews(),
	}, nil
}

func (s *CompetitionService) simulate(lang string) *model.CompetitionData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &model.CompetitionData{
		Language:            lang,
		Competitors:         s.rng.IntN(26),
		AvgChannelAgeMonths: s.rng.Float64() * 12,
		AvgTopViews:         1000 + s.rng.Int64N(49000),
	}
}

func (s *CompetitionService) randTopViews() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 1000 + s.rng.Int64N(49000)
}

// ClassifyEntry derives the entry-window verdict from a snapshot. Days
// until close scale linearly with the age headroom; a closed window has 0.
func ClassifyEntry(competitors int, avgAgeMonths float64) model.EntryTimingData {
	open := competitors <= openMaxCompetitors && avgAgeMonths <= openMaxAgeMonths
	if !open {
		return model.EntryTimingData{Open: false, DaysUntilClose: 0}
	}

	days := int((openMaxAgeMonths - avgAgeMonths) * daysPerMonth)
	if days < 0 {
		days = 0
	}
	return model.EntryTimingData{Open: true, DaysUntilClose: days}
}

// SortComparisons orders open windows first, then ascending competitor
// count, then language for determinism.
func SortComparisons(items []model.ComparisonData) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Entry.Open != items[j].Entry.Open {
			return items[i].Entry.Open
		}
		if items[i].Competitors != items[j].Competitors {
			return items[i].Competitors < items[j].Competitors
		}
		return items[i].Language < items[j].Language
	})
}

// Recommend picks the open-window language with fewest competitors, or the
// overall least-saturated one when every window is closed. Nil for empty
// input.
func Recommend(items []model.ComparisonData) *model.RecommendationData {
	if len(items) == 0 {
		return nil
	}

	best := items[0]
	reason := fmt.Sprintf("Janela de entrada aberta em %q com %d concorrentes", best.Language, best.Competitors)
	if !best.Entry.Open {
		for _, it := range items[1:] {
			if it.Competitors < best.Competitors {
				best = it
			}
		}
		reason = fmt.Sprintf("Nenhuma janela aberta: %q é o mercado menos saturado (%d concorrentes)", best.Language, best.Competitors)
	}

	strategy := "Diferencie com micro-subnichos: segmente os títulos dentro do tema"
	if best.Competitors < directKeywordMaxCompetitors {
		strategy = "Use palavras-chave diretas do subnicho nos títulos"
	}

	return &model.RecommendationData{
		Language:    best.Language,
		Competitors: best.Competitors,
		Strategy:    strategy,
		Reason:      reason,
	}
}
