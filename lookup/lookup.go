// Package lookup resolves ISIN codes for tickers and security names by
// scraping a search engine's HTML results, scoped to investing.com pages.
// It is a best-effort collaborator: callers must treat every failure as
// "no ISIN", never as a reason to drop the item.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/folioscan"
)

// ErrNoMatch is returned when the search produced results but none carried a
// recognizable ISIN.
var ErrNoMatch = errors.New("no isin found")

const (
	defaultSearchURL = "https://html.duckduckgo.com/html/"
	defaultTimeout   = 15 * time.Second
	// userAgent identifies us as a plain browser; the HTML endpoint rejects
	// the default Go client string.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) folioscan/1.0"
)

// isinLabeledRe matches an explicitly labeled ISIN in a result snippet.
var isinLabeledRe = regexp.MustCompile(`ISIN:\s*([A-Z]{2}[A-Z0-9]{10})`)

// isinBareRe is the fallback: any ISIN-shaped code in the snippet.
var isinBareRe = regexp.MustCompile(`[A-Z]{2}[A-Z0-9]{10}`)

// Client looks up ISINs through an HTML search endpoint. The zero value uses
// a plain default client; New returns one with the daily response cache and
// a timeout, which is what production callers want.
type Client struct {
	// HTTPClient performs the requests; http.DefaultClient when nil.
	HTTPClient *http.Client
	// SearchURL is the HTML search endpoint; defaultSearchURL when empty.
	SearchURL string
}

// New returns a Client with a daily-expiring disk cache and the given
// timeout (defaultTimeout when zero). The timeout bounds the whole search
// call: the upstream engine can hang, and classification must not.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{HTTPClient: newCachingClient(timeout)}
}

// LookupISIN searches for `"isin" <query> investing.com` and extracts the
// first ISIN found in the result snippets, with the instrument category
// derived from the matching investing.com URL. For ticker queries the
// exchange suffix is stripped to broaden recall. Honors ctx cancellation.
func (c *Client) LookupISIN(ctx context.Context, query string, hint folioscan.AssetCategory) (folioscan.LookupResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return folioscan.LookupResult{}, errors.New("empty query")
	}
	if hint == folioscan.CategoryTicker {
		if i := strings.LastIndex(query, "."); i > 0 {
			query = query[:i]
		}
	}

	doc, err := c.search(ctx, fmt.Sprintf(`"isin" %s investing.com`, query))
	if err != nil {
		return folioscan.LookupResult{}, err
	}

	var found folioscan.LookupResult
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Find("a.result__a").Attr("href")
		snippet := s.Find(".result__snippet").Text()

		isin := extractISIN(snippet)
		if isin == "" {
			return true // keep scanning the remaining results
		}
		found = folioscan.LookupResult{ISIN: isin, Category: categoryFromURL(resolveRedirect(href))}
		return false
	})

	if found.ISIN == "" {
		return folioscan.LookupResult{}, ErrNoMatch
	}
	return found, nil
}

// search fetches and parses the result page for one query.
func (c *Client) search(ctx context.Context, query string) (*goquery.Document, error) {
	searchURL := c.SearchURL
	if searchURL == "" {
		searchURL = defaultSearchURL
	}
	httpc := c.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse search results: %w", err)
	}
	return doc, nil
}

// extractISIN pulls an ISIN out of a snippet, preferring an explicitly
// labeled one.
func extractISIN(snippet string) string {
	if m := isinLabeledRe.FindStringSubmatch(snippet); m != nil {
		return m[1]
	}
	return isinBareRe.FindString(snippet)
}

// resolveRedirect unwraps the search engine's redirect links (the target is
// carried in the uddg query parameter); other links pass through.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// categoryFromURL derives the instrument category from an investing.com URL
// path: /etfs/... is an etf, /equities/... an equity, and so on. Unknown
// sections pass through as-is; non-investing URLs give no category.
func categoryFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(u.Host, "investing.com") {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	switch parts[0] {
	case "etfs":
		return "etf"
	case "equities":
		return "equity"
	case "rates-bonds":
		return "bond"
	case "commodities":
		return "commodity"
	default:
		return parts[0]
	}
}
