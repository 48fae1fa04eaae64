package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// Synthetic indicator ranges. Growth, views and variance are not yet wired
// to real historical series; the source interface exists so a real adapter
// can replace SyntheticSource without touching the calculator.
const (
	growthRateMax   = 20.0
	viewsMin        = 1000
	viewsSpan       = 15000
	viewVarianceMax = 0.5
)

// MetricsSource supplies the indicators that are not derivable from the
// channel list alone.
type MetricsSource interface {
	GrowthRate(s model.Subnicho) float64
	AvgViewsPerVideo(s model.Subnicho) int64
	ViewVariance(s model.Subnicho) float64
}

// SyntheticSource draws the indicators uniformly from their documented
// ranges. Safe for concurrent use.
type SyntheticSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSyntheticSource(seed uint64) *SyntheticSource {
	return &SyntheticSource{rng: rand.New(rand.NewPCG(seed, seed<<1|1))}
}

func (s *SyntheticSource) GrowthRate(model.Subnicho) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * growthRateMax
}

func (s *SyntheticSource) AvgViewsPerVideo(model.Subnicho) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewsMin + s.rng.Int64N(viewsSpan)
}

func (s *SyntheticSource) ViewVariance(model.Subnicho) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * viewVarianceMax
}

// MetricsService computes derived per-subnicho statistics.
type MetricsService struct {
	source MetricsSource
	now    func() time.Time
}

func NewMetricsService(source MetricsSource) *MetricsService {
	return &MetricsService{source: source, now: time.Now}
}

// Calculate derives metrics for every subnicho. Output cardinality always
// matches input; zero-channel subnichos get zeroed averages, never NaN.
func (s *MetricsService) Calculate(subnichos []model.Subnicho) []model.SubnichoMetrics {
	now := s.now()
	out := make([]model.SubnichoMetrics, 0, len(subnichos))

	for _, sub := range subnichos {
		var totalSubs, totalVideos int64
		var ageSum float64
		for _, ch := range sub.Channels {
			totalSubs += ch.Subscribers
			totalVideos += ch.TotalVideos
			ageSum += float64(MonthsBetween(ch.CreatedAt, now))
		}

		var avgSubsPerVideo float64
		if totalVideos > 0 {
			avgSubsPerVideo = float64(totalSubs) / float64(totalVideos)
		}
		var avgAge float64
		if len(sub.Channels) > 0 {
			avgAge = ageSum / float64(len(sub.Channels))
		}

		m := model.SubnichoMetrics{
			Subnicho:               sub,
			AvgSubscribersPerVideo: avgSubsPerVideo,
			AvgChannelAgeMonths:    avgAge,
		}
		if len(sub.Channels) > 0 {
			m.GrowthRate = s.source.GrowthRate(sub)
			m.AvgViewsPerVideo = s.source.AvgViewsPerVideo(sub)
			m.ViewVariance = s.source.ViewVariance(sub)
		}
		out = append(out, m)
	}
	return out
}

// MonthsBetween returns the exact calendar-month difference between two
// instants: full months elapsed, decremented when the day of month has not
// been reached yet. Never negative.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
