// Package youtube is a thin client for the YouTube Data API v3, reduced to
// the three calls the pipeline needs: channel search, channel statistics and
// recent upload titles. The API is treated as an opaque HTTP data source;
// call sites perform no retry or backoff.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

var (
	// ErrInvalidAPIKey signals the key was rejected; callers re-prompt the user.
	ErrInvalidAPIKey = errors.New("youtube: chave de API inválida")
	// ErrQuotaExceeded signals the daily quota is exhausted.
	ErrQuotaExceeded = errors.New("youtube: cota da API excedida")
)

// ChannelRef identifies a channel returned by search. Topic carries the
// query that surfaced it.
type ChannelRef struct {
	ID    string
	Name  string
	Topic string
}

// Source abstracts where channel data comes from: the real Data API or the
// synthetic generator used when no key is configured.
type Source interface {
	SearchChannels(ctx context.Context, query, language string, limit int) ([]ChannelRef, error)
	FetchChannel(ctx context.Context, ref ChannelRef) (*model.Channel, error)
}

// Client calls the YouTube Data API v3 over HTTP.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
			VideoID   string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// SearchChannels returns up to limit channels matching the query.
// An empty result set is not an error.
func (c *Client) SearchChannels(ctx context.Context, query, language string, limit int) ([]ChannelRef, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "channel")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(min(limit, 50)))
	params.Set("relevanceLanguage", language)

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	refs := make([]ChannelRef, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.ChannelID == "" {
			continue
		}
		refs = append(refs, ChannelRef{
			ID:    item.ID.ChannelID,
			Name:  item.Snippet.Title,
			Topic: query,
		})
	}
	return refs, nil
}

// FetchChannel loads statistics and the ten most recent upload titles for
// one channel. Two sequential calls; a failure in either fails this channel
// only, never the batch.
func (c *Client) FetchChannel(ctx context.Context, ref ChannelRef) (*model.Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", ref.ID)

	var stats channelsResponse
	if err := c.get(ctx, "/channels", params, &stats); err != nil {
		return nil, err
	}
	if len(stats.Items) == 0 {
		return nil, fmt.Errorf("youtube: canal %s não encontrado", ref.ID)
	}
	item := stats.Items[0]

	createdAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("youtube: data de criação inválida para %s: %w", ref.ID, err)
	}
	subs, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
	videos, _ := strconv.ParseInt(item.Statistics.VideoCount, 10, 64)

	recentParams := url.Values{}
	recentParams.Set("part", "snippet")
	recentParams.Set("type", "video")
	recentParams.Set("channelId", ref.ID)
	recentParams.Set("order", "date")
	recentParams.Set("maxResults", "10")

	var recent searchResponse
	if err := c.get(ctx, "/search", recentParams, &recent); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(recent.Items))
	for _, v := range recent.Items {
		if v.Snippet.Title != "" {
			titles = append(titles, v.Snippet.Title)
		}
	}

	name := item.Snippet.Title
	if name == "" {
		name = ref.Name
	}

	return &model.Channel{
		ChannelID:    ref.ID,
		Name:         name,
		CreatedAt:    createdAt,
		TotalVideos:  videos,
		Subscribers:  subs,
		RecentTitles: titles,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: falha na requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mapAPIError(resp.StatusCode, resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func mapAPIError(status int, resp *http.Response) error {
	var ae apiError
	_ = json.NewDecoder(resp.Body).Decode(&ae)

	for _, e := range ae.Error.Errors {
		switch e.Reason {
		case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
			return ErrQuotaExceeded
		case "keyInvalid", "keyExpired":
			return ErrInvalidAPIKey
		}
	}
	if status == http.StatusBadRequest && strings.Contains(ae.Error.Message, "API key") {
		return ErrInvalidAPIKey
	}
	if status == http.StatusForbidden {
		return ErrQuotaExceeded
	}

	msg := ae.Error.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("youtube: erro da API (%d): %s", status, msg)
}
