package provider

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// RSS serves headlines from a fixed set of RSS/Atom feeds. It stands in for
// the news API when no credential is configured; the category parameter is
// accepted and ignored since feeds carry their own editorial scope.
type RSS struct {
	feeds     []string
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	timeout   time.Duration
}

// NewRSS creates an RSS news source for the given feed URLs
func NewRSS(feeds []string, timeout time.Duration) *RSS {
	return &RSS{
		feeds:     feeds,
		parser:    gofeed.NewParser(),
		sanitizer: bluemonday.StrictPolicy(),
		timeout:   timeout,
	}
}

// TopHeadlines fetches and merges items from all configured feeds. A feed
// failure is logged and skipped; the fetch fails only when every feed fails.
func (r *RSS) TopHeadlines(ctx context.Context, category string) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var articles []domain.Article
	var lastErr error

	for _, feedURL := range r.feeds {
		feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			lgr.Printf("[WARN] failed to parse feed %s: %v", feedURL, err)
			lastErr = domain.WrapFailure(domain.ErrNetwork, err, "parse feed "+feedURL)
			continue
		}

		for _, item := range feed.Items {
			article := domain.Article{
				Title:       item.Title,
				Description: r.clean(item.Description),
				Content:     r.clean(item.Content),
				Source:      feed.Title,
				URL:         item.Link,
			}
			if item.PublishedParsed != nil {
				article.PublishedAt = *item.PublishedParsed
			} else if item.UpdatedParsed != nil {
				article.PublishedAt = *item.UpdatedParsed
			}
			articles = append(articles, article)
		}
	}

	if len(articles) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return articles, nil
}

// clean strips markup from feed-sourced text so keyword matching and
// display see plain text
func (r *RSS) clean(s string) string {
	return strings.TrimSpace(r.sanitizer.Sanitize(s))
}
