package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/catalog"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/youtube"
)

const (
	minExtractChannels = 10
	maxExtractChannels = 100
	keywordsPerChannel = 5
	minKeywordLen      = 4
	fetchConcurrency   = 8
	defaultMicroLimit  = 5
)

// ExtractResult carries the grouped subnichos plus the channels whose
// detail fetch failed. One bad channel never aborts the batch.
type ExtractResult struct {
	Subnichos []model.Subnicho       `json:"subnichos"`
	Failures  []model.ChannelFailure `json:"falhas"`
}

// ExtractService turns a principal niche into candidate subnichos by
// grouping searched channels under their frequent title keywords.
type ExtractService struct {
	src   youtube.Source
	cat   *catalog.Catalog
	cache *CacheService
}

func NewExtractService(src youtube.Source, cat *catalog.Catalog, cache *CacheService) *ExtractService {
	return &ExtractService{src: src, cat: cat, cache: cache}
}

// Extract searches channels for the niche, fetches each channel's details
// concurrently (failures isolated per channel) and groups the survivors by
// their top title keywords. An empty search result yields an empty result,
// not an error.
func (s *ExtractService) Extract(ctx context.Context, niche, language string, limit int) (*ExtractResult, error) {
	niche = strings.TrimSpace(niche)
	if limit < minExtractChannels {
		limit = minExtractChannels
	}
	if limit > maxExtractChannels {
		limit = maxExtractChannels
	}
	lang := normalizeLanguage(language)

	cacheKey := fmt.Sprintf("%s:%s:%d", lang, strings.ToLower(niche), limit)
	if s.cache != nil {
		data, err := s.cache.GetSearch(ctx, cacheKey)
		if err != nil {
			log.Printf("cache: search get error: %v", err)
		} else if data != nil {
			var cached ExtractResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	refs, err := s.src.SearchChannels(ctx, niche, lang, limit)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return &ExtractResult{Subnichos: []model.Subnicho{}, Failures: []model.ChannelFailure{}}, nil
	}

	var (
		mu       sync.Mutex
		channels []model.Channel
		failures []model.ChannelFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, ref := range refs {
		g.Go(func() error {
			ch, err := s.src.FetchChannel(gctx, ref)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, model.ChannelFailure{
					ChannelID: ref.ID,
					Name:      ref.Name,
					Reason:    err.Error(),
				})
				return nil
			}
			channels = append(channels, *ch)
			return nil
		})
	}
	_ = g.Wait() // goroutines report via the failures list, never an error

	result := &ExtractResult{
		Subnichos: GroupByKeywords(channels, s.cat.StopwordSet(lang)),
		Failures:  failures,
	}
	if result.Failures == nil {
		result.Failures = []model.ChannelFailure{}
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, cacheKey, result); err != nil {
			log.Printf("cache: search set error: %v", err)
		}
	}
	return result, nil
}

// MicroSubnichos derives further-specialized labels from one channel's own
// title patterns: frequent bigrams of non-stopword words.
func (s *ExtractService) MicroSubnichos(ch model.Channel, language string, limit int) []model.MicroSubnicho {
	if limit <= 0 {
		limit = defaultMicroLimit
	}
	stop := s.cat.StopwordSet(normalizeLanguage(language))

	counts := make(map[string]int)
	samples := make(map[string][]string)
	for _, title := range ch.RecentTitles {
		words := keywordTokens(title, stop)
		seen := make(map[string]bool)
		for i := 0; i+1 < len(words); i++ {
			bigram := words[i] + " " + words[i+1]
			counts[bigram]++
			if !seen[bigram] {
				seen[bigram] = true
				samples[bigram] = append(samples[bigram], title)
			}
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > limit {
		labels = labels[:limit]
	}

	out := make([]model.MicroSubnicho, 0, len(labels))
	for _, label := range labels {
		out = append(out, model.MicroSubnicho{
			Label:        label,
			Occurrences:  counts[label],
			SampleTitles: samples[label],
		})
	}
	return out
}

// GroupByKeywords buckets channels under each of their top title keywords.
// A channel matching several keywords appears under all of them. Groups are
// ordered by channel count descending, label ascending.
func GroupByKeywords(channels []model.Channel, stop map[string]struct{}) []model.Subnicho {
	groups := make(map[string][]model.Channel)
	for _, ch := range channels {
		for _, kw := range TopKeywords(ch.RecentTitles, stop, keywordsPerChannel) {
			groups[kw] = append(groups[kw], ch)
		}
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if len(groups[labels[i]]) != len(groups[labels[j]]) {
			return len(groups[labels[i]]) > len(groups[labels[j]])
		}
		return labels[i] < labels[j]
	})

	out := make([]model.Subnicho, 0, len(labels))
	for _, label := range labels {
		out = append(out, model.Subnicho{Label: label, Channels: groups[label]})
	}
	return out
}

// TopKeywords returns the n most frequent non-stopword words (length > 3)
// across the titles, ties broken alphabetically for determinism.
func TopKeywords(titles []string, stop map[string]struct{}, n int) []string {
	counts := make(map[string]int)
	for _, title := range titles {
		for _, w := range keywordTokens(title, stop) {
			counts[w]++
		}
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}

// keywordTokens lowercases and splits a title, dropping stopwords and words
// shorter than four characters.
func keywordTokens(title string, stop map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) < minKeywordLen {
			continue
		}
		if _, isStop := stop[w]; isStop {
			continue
		}
		out = append(out, w)
	}
	return out
}
