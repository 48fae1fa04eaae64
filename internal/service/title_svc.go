package service

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/catalog"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// maxTitleLen is the hard cap on generated titles; longer output is
// ellipsis-truncated.
const maxTitleLen = 100

// TitleService produces templated title variants from the embedded
// catalogue. Generation order is randomized; requesting more variants than
// the catalogue holds silently caps at the catalogue size.
type TitleService struct {
	cat *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTitleService(cat *catalog.Catalog, seed uint64) *TitleService {
	return &TitleService{
		cat: cat,
		rng: rand.New(rand.NewPCG(seed, seed<<1|1)),
	}
}

// Generate returns up to count title strings for the given base title.
// emotion filters the catalogue when it matches at least one template.
func (s *TitleService) Generate(title, language, emotion string, keywords []string, count int) []string {
	templates := s.pickTemplates(emotion, count)
	lang := normalizeLanguage(language)

	out := make([]string, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, s.render(tpl.Formats[lang], title, keywords))
	}
	return out
}

// GenerateStructured returns TitleVariation records with emotion and
// saturation tags plus the same framing rendered in the other languages.
func (s *TitleService) GenerateStructured(title, language, emotion string, keywords []string, count int) []model.TitleVariation {
	templates := s.pickTemplates(emotion, count)
	lang := normalizeLanguage(language)

	out := make([]model.TitleVariation, 0, len(templates))
	for _, tpl := range templates {
		v := model.TitleVariation{
			Text:         s.render(tpl.Formats[lang], title, keywords),
			Emotion:      tpl.Emotion,
			Saturation:   tpl.Saturation,
			Language:     lang,
			Translations: make(map[string]string, len(catalog.Languages)-1),
		}
		for _, other := range catalog.Languages {
			if other == lang {
				continue
			}
			v.Translations[other] = s.render(tpl.Formats[other], title, keywords)
		}
		out = append(out, v)
	}
	return out
}

// Remodel substitutes synonym-dictionary terms found in the title,
// case-insensitively, producing one variant per (term, synonym) pair.
func (s *TitleService) Remodel(title, language string, count int) []string {
	lang := normalizeLanguage(language)
	dict := s.cat.SynonymsFor(lang)

	var variants []string
	for term, synonyms := range dict {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
		if !re.MatchString(title) {
			continue
		}
		for _, syn := range synonyms {
			variants = append(variants, Truncate(re.ReplaceAllString(title, syn)))
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(variants), func(i, j int) {
		variants[i], variants[j] = variants[j], variants[i]
	})
	s.mu.Unlock()

	if count > 0 && len(variants) > count {
		variants = variants[:count]
	}
	return variants
}

// pickTemplates shuffles the catalogue (filtered by emotion when it matches
// anything) and slices to count.
func (s *TitleService) pickTemplates(emotion string, count int) []catalog.Template {
	candidates := make([]catalog.Template, 0, len(s.cat.Templates))
	if emotion != "" {
		for _, t := range s.cat.Templates {
			if t.Emotion == emotion {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, s.cat.Templates...)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.mu.Unlock()

	if count <= 0 || count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count]
}

func (s *TitleService) render(format, title string, keywords []string) string {
	out := strings.ReplaceAll(format, "{title}", title)

	if strings.Contains(out, "{keyword}") {
		keyword := title
		if len(keywords) > 0 {
			keyword = keywords[0]
		}
		out = strings.ReplaceAll(out, "{keyword}", keyword)
	}

	if strings.Contains(out, "{n}") {
		s.mu.Lock()
		n := 3 + s.rng.IntN(8)
		s.mu.Unlock()
		out = strings.ReplaceAll(out, "{n}", fmt.Sprintf("%d", n))
	}

	return Truncate(out)
}

// Truncate caps a title at maxTitleLen runes, marking the cut with an
// ellipsis.
func Truncate(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen-3]) + "..."
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range catalog.Languages {
		if lang == l {
			return l
		}
	}
	return "pt"
}
