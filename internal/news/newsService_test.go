package news

import (
	"strings"
	"testing"

	"github.com/mmcdole/gofeed/rss"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>"contract law" - Google News</title>
<item>
  <title>Court upholds arbitration clause</title>
  <link>https://example.com/arbitration</link>
  <pubDate>Mon, 25 Aug 2025 10:00:00 GMT</pubDate>
  <description>&lt;a href="https://example.com"&gt;Court upholds arbitration clause&lt;/a&gt;&amp;nbsp;in a landmark ruling</description>
  <source url="https://example.com">Example Law Journal</source>
  <media:content url="https://img.example.com/arbitration.jpg"/>
</item>
<item>
  <title>Court upholds arbitration clause</title>
  <link>https://example.com/duplicate</link>
  <description>duplicate title entry</description>
</item>
<item>
  <title>New data privacy rules take effect</title>
  <link>https://example.com/privacy</link>
  <description></description>
</item>
</channel>
</rss>`

func parseFixture(t *testing.T) *rss.Feed {
	t.Helper()
	feed, err := (&rss.Parser{}).Parse(strings.NewReader(feedFixture))
	if err != nil {
		t.Fatalf("fixture did not parse: %v", err)
	}
	return feed
}

func TestArticlesFromFeed(t *testing.T) {
	articles := articlesFromFeed("contract law", parseFixture(t))

	if len(articles) != 2 {
		t.Fatalf("articles = %d; want 2 (duplicate title dropped)", len(articles))
	}

	first := articles[0]
	if first.ID != "contract law-0" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Source != "Example Law Journal" {
		t.Errorf("Source = %q", first.Source)
	}
	if strings.Contains(first.Description, "<") {
		t.Errorf("description still has HTML: %q", first.Description)
	}
	if first.Image != "https://img.example.com/arbitration.jpg" {
		t.Errorf("Image = %q", first.Image)
	}
	if first.PublishedDate != "Mon, 25 Aug 2025 10:00:00 GMT" {
		t.Errorf("PublishedDate = %q", first.PublishedDate)
	}

	second := articles[1]
	if second.Source != "Google News" {
		t.Errorf("missing source must fall back, got %q", second.Source)
	}
	if second.Description != second.Title {
		t.Errorf("empty description must fall back to title, got %q", second.Description)
	}
	if second.PublishedDate != "Recently" {
		t.Errorf("missing pubDate must fall back, got %q", second.PublishedDate)
	}
	if second.ID != "contract law-1" {
		t.Errorf("ID = %q", second.ID)
	}
}

func TestArticlesFromFeed_Truncation(t *testing.T) {
	long := strings.Repeat("clause ", 60) //well past the cap
	feed := &rss.Feed{Items: []*rss.Item{{
		Title:       "Long read",
		Link:        "https://example.com/long",
		Description: long,
	}}}

	articles := articlesFromFeed("legal", feed)
	if len(articles) != 1 {
		t.Fatalf("articles = %d; want 1", len(articles))
	}
	if got := len([]rune(articles[0].Description)); got != 250 {
		t.Errorf("description length = %d; want 250", got)
	}
}

func TestExtractImage_SkipsJunk(t *testing.T) {
	item := &rss.Item{
		Description: `<img src="https://cdn.example.com/logo.png"> story text`,
	}
	if got := extractImage(item); got != "" {
		t.Errorf("logo image must be skipped, got %q", got)
	}

	item = &rss.Item{
		Description: `<img src="https://cdn.example.com/photo.jpg"> story text`,
	}
	if got := extractImage(item); got != "https://cdn.example.com/photo.jpg" {
		t.Errorf("Image = %q", got)
	}
}
