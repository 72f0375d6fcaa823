package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Client implements IExtractor
type Client struct {
	userAgent string
	client    *http.Client
}

// New creates a new extractor
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Client{
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Extract fetches url and returns its title, meta description and a bounded text excerpt.
func (c *Client) Extract(ctx context.Context, url string) Result {
	body, length, err := c.fetch(ctx, url)
	if err != nil {
		return Result{URL: url, Status: StatusFailed, Error: err.Error()}
	}

	res := Parse(body)
	res.URL = url
	res.SourceLength = length
	return res
}

// fetch returns at most maxBodyBytes of the body for parsing, plus the character
// length of the whole body.
func (c *Client) fetch(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read response: %w", err)
	}

	rest := runeCounter(0)
	if _, err := io.Copy(&rest, resp.Body); err != nil {
		return "", 0, fmt.Errorf("failed to read response: %w", err)
	}

	var head runeCounter
	_, _ = head.Write(raw)
	return string(raw), int(head + rest), nil
}

// runeCounter counts UTF-8 characters by their leading bytes, so a character split
// across writes is counted once.
type runeCounter int

func (rc *runeCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b&0xC0 != 0x80 {
			*rc++
		}
	}
	return len(p), nil
}

// Parse extracts title, description and excerpt from an HTML document.
func Parse(body string) Result {
	res := Result{
		Status:       StatusSuccess,
		SourceLength: utf8.RuneCountInString(body),
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		res.Status = StatusFailed
		res.Error = fmt.Sprintf("failed to parse HTML: %v", err)
		return res
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if res.Title == "" {
					res.Title = textOf(n)
				}
			case "meta":
				if res.Description == "" && strings.EqualFold(getAttr(n, "name"), "description") {
					res.Description = strings.TrimSpace(getAttr(n, "content"))
				}
			case "p", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				if t := textOf(n); t != "" {
					parts = append(parts, t)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	res.Excerpt = Truncate(strings.Join(parts, " "), MaxExcerptRunes)
	return res
}

// textOf returns the whitespace-normalized text under n, skipping script and style.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Truncate returns at most max runes of s.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
