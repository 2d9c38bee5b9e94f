package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/config"
	"github.com/clearclause/contract-rag/internal/customHttpClient"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

// Article is the proxy's wire shape for one news entry.
type Article struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate"`
	Source        string `json:"source"`
	Image         string `json:"image"`
	Topic         string `json:"topic"`
}

type Fetcher struct {
	client *http.Client
	parser *rss.Parser
	logger *logger_i.Logger
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: customHttpClient.Client,
		parser: &rss.Parser{},
		logger: logger_i.NewLogger("newsFetcher"),
	}
}

// TopicArticles pulls the Google News RSS search feed for a topic and maps
// the top entries into articles.
func (f *Fetcher) TopicArticles(ctx context.Context, topic string) ([]Article, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	feedURL := fmt.Sprintf(config.NewsFeedURL, url.QueryEscape(topic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "building feed request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "fetching news feed for %q", topic)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.Internal, "news feed for %q returned status %d", topic, resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "parsing news feed for %q", topic)
	}

	articles := articlesFromFeed(topic, feed)
	f.logger.Info("news feed fetched", "topic", topic, "entries", len(feed.Items), "articles", len(articles))
	return articles, nil
}

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	imgSrcPattern  = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)
)

// articlesFromFeed considers only the first ten entries and deduplicates by
// title inside that window.
func articlesFromFeed(topic string, feed *rss.Feed) []Article {
	items := feed.Items
	if len(items) > config.NewsMaxArticles {
		items = items[:config.NewsMaxArticles]
	}

	articles := make([]Article, 0, len(items))
	seenTitles := make(map[string]bool, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" || seenTitles[title] {
			continue
		}
		seenTitles[title] = true

		description := strings.TrimSpace(item.Description)
		if strings.Contains(description, "<") && strings.Contains(description, ">") {
			description = strings.TrimSpace(htmlTagPattern.ReplaceAllString(description, ""))
		}
		if description == "" {
			description = truncate(title, 200)
		} else {
			description = truncate(description, config.NewsDescMaxChars)
		}

		publishedDate := item.PubDate
		if publishedDate == "" {
			publishedDate = "Recently"
		}

		source := "Google News"
		if item.Source != nil && item.Source.Title != "" {
			source = item.Source.Title
		}

		articles = append(articles, Article{
			ID:            fmt.Sprintf("%s-%d", topic, len(articles)),
			Title:         title,
			Description:   description,
			URL:           item.Link,
			PublishedDate: publishedDate,
			Source:        source,
			Image:         extractImage(item),
			Topic:         topic,
		})
	}
	return articles
}

// extractImage walks the places Google News hides thumbnails: media:content,
// media:thumbnail, the enclosure, then an <img> inside the description HTML.
func extractImage(item *rss.Item) string {
	for _, name := range []string{"content", "thumbnail"} {
		for _, e := range item.Extensions["media"][name] {
			if u := e.Attrs["url"]; u != "" {
				return u
			}
		}
	}

	if item.Enclosure != nil && strings.HasPrefix(item.Enclosure.Type, "image/") && item.Enclosure.URL != "" {
		return item.Enclosure.URL
	}

	if m := imgSrcPattern.FindStringSubmatch(item.Description); m != nil {
		u := strings.ToLower(m[1])
		for _, junk := range []string{"logo", "favicon", "1x1", "spacer"} {
			if strings.Contains(u, junk) {
				return ""
			}
		}
		return m[1]
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
