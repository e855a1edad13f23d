package domain

import (
	"strconv"
	"time"
)

// Article represents a single news headline as received from a provider.
// Articles are immutable values once received; the canonical URL serves as
// the dedupe/display key.
type Article struct {
	Title       string
	Description string
	Content     string
	Source      string
	URL         string
	PublishedAt time.Time
}

// Key returns the identity used for downstream keying. Articles without a
// URL fall back to their position index, valid for one render cycle only.
func (a Article) Key(pos int) string {
	if a.URL != "" {
		return a.URL
	}
	return "idx:" + strconv.Itoa(pos)
}
