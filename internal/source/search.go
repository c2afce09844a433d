package source

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	defaultSearchBaseURL = "https://html.duckduckgo.com/html/"
	defaultSearchLimit   = 5
	maxSearchLimit       = 20
)

// Searcher scrapes an HTML search results page. Result markup changes often,
// so anything it cannot recognize is skipped and an empty list is a valid answer.
type Searcher struct {
	fetcher *Fetcher
	baseURL string
}

func NewSearcher(fetcher *Fetcher, baseURL string) *Searcher {
	if baseURL == "" {
		baseURL = defaultSearchBaseURL
	}
	return &Searcher{fetcher: fetcher, baseURL: baseURL}
}

func (s *Searcher) SearchArticles(ctx context.Context, query string, limit int) ([]Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, ErrInvalidURL
	}
	q := endpoint.Query()
	q.Set("q", query)
	endpoint.RawQuery = q.Encode()

	body, err := s.fetcher.Get(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	return parseSearchResults(body, endpoint, limit)
}

func parseSearchResults(body []byte, base *url.URL, limit int) ([]Article, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	articles := []Article{}
	seen := map[string]bool{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(articles) >= limit {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.A && hasClass(n, "result__a") {
			href := resolveResultURL(attr(n, "href"), base)
			title := strings.Join(strings.Fields(nodeText(n)), " ")
			if href != "" && title != "" && !seen[href] {
				seen[href] = true
				articles = append(articles, Article{Title: title, URL: href})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return articles, nil
}

// resolveResultURL unwraps DuckDuckGo's /l/?uddg= redirect links.
func resolveResultURL(href string, base *url.URL) string {
	if href == "" {
		return ""
	}
	u, err := base.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		if t, err := url.Parse(target); err == nil {
			u = t
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
