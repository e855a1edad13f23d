package mood

import (
	"strings"

	"github.com/moodfeed/moodfeed/pkg/domain"
)

// FilterRelevant returns the stable sub-sequence of articles matching at
// least one keyword as a case-insensitive substring of the title,
// description or content. Missing optional fields are treated as empty and
// never trigger a match. An empty keyword set returns the input unchanged,
// which is the policy for the neutral band and for disabled filtering.
func FilterRelevant(articles []domain.Article, keywords []string) []domain.Article {
	if len(keywords) == 0 {
		return articles
	}

	result := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if matchesAny(a, keywords) {
			result = append(result, a)
		}
	}
	return result
}

func matchesAny(a domain.Article, keywords []string) bool {
	title := strings.ToLower(a.Title)
	description := strings.ToLower(a.Description)
	content := strings.ToLower(a.Content)

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(title, kw) || strings.Contains(description, kw) || strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
