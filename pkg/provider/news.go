package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// News is a NewsAPI-compatible client for top headlines
type News struct {
	baseURL string
	apiKey  string
	country string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewNews creates a news client for the given base URL and credential
func NewNews(baseURL, apiKey, country string, timeout time.Duration) *News {
	return &News{
		baseURL: baseURL,
		apiKey:  apiKey,
		country: country,
		client:  &http.Client{Timeout: timeout},
		circuit: newBreaker("news"),
	}
}

// headlinesResp mirrors the provider's top-headlines payload
type headlinesResp struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// TopHeadlines fetches current headlines. An empty category requests the
// provider's default mix.
func (n *News) TopHeadlines(ctx context.Context, category string) ([]domain.Article, error) {
	values := url.Values{}
	values.Set("country", n.country)
	values.Set("apiKey", n.apiKey)
	if category != "" {
		values.Set("category", category)
	}

	u := fmt.Sprintf("%s/top-headlines?%s", n.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := doRequest(ctx, n.client, n.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload headlinesResp
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.WrapFailure(domain.ErrMalformed, err, "decode headlines")
	}

	if payload.Status != "ok" {
		return nil, domain.Failuref(domain.ErrMalformed, "news api status %q: %s", payload.Status, payload.Message)
	}
	if payload.Articles == nil {
		return nil, domain.Failuref(domain.ErrMalformed, "news api response missing articles")
	}

	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		article := domain.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			Source:      a.Source.Name,
			URL:         a.URL,
		}
		if ts, parseErr := time.Parse(time.RFC3339, a.PublishedAt); parseErr == nil {
			article.PublishedAt = ts
		}
		articles = append(articles, article)
	}
	return articles, nil
}
