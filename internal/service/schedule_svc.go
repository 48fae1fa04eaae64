package service

import (
	"fmt"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// publicationHour fixes the time-of-day of every scheduled slot.
const publicationHour = 10

// defaultBasePhrase seeds title generation for calendar slots.
const defaultBasePhrase = "Tudo sobre %s"

// cadenceDays maps the supported publication cadences to day intervals.
var cadenceDays = map[string]int{
	"diario":    1,
	"diário":    1,
	"semanal":   7,
	"quinzenal": 14,
	"mensal":    30,
}

// ScheduleService builds literal publication calendars by round-robin
// assignment over the recommended subnichos.
type ScheduleService struct {
	titles *TitleService
	now    func() time.Time
}

func NewScheduleService(titles *TitleService) *ScheduleService {
	return &ScheduleService{titles: titles, now: time.Now}
}

// Schedule produces exactly cycles entries whenever recommendations is
// non-empty (round-robin wraps, it never runs out). Dates strictly increase;
// the publication time is fixed at 10:00 local time.
func (s *ScheduleService) Schedule(recs []model.ScheduleRecommendation, cadence string, cycles int, language string) ([]model.PublicationScheduleEntry, error) {
	interval, ok := cadenceDays[cadence]
	if !ok {
		return nil, fmt.Errorf("frequência inválida: %q", cadence)
	}
	if cycles <= 0 {
		return nil, fmt.Errorf("número de ciclos deve ser positivo")
	}
	if len(recs) == 0 {
		return []model.PublicationScheduleEntry{}, nil
	}

	now := s.now()
	day0 := time.Date(now.Year(), now.Month(), now.Day(), publicationHour, 0, 0, 0, now.Location())

	entries := make([]model.PublicationScheduleEntry, 0, cycles)
	for i := range cycles {
		rec := recs[i%len(recs)]
		base := fmt.Sprintf(defaultBasePhrase, rec.MicroSubnicho)

		title := base
		if generated := s.titles.Generate(base, language, "", nil, 1); len(generated) > 0 {
			title = generated[0]
		}

		entries = append(entries, model.PublicationScheduleEntry{
			Date:     day0.AddDate(0, 0, i*interval),
			Subnicho: rec.MicroSubnicho,
			Title:    title,
		})
	}
	return entries, nil
}
