package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	page := `<html><head><title> Red Sea Studio </title>
<meta name="description" content="Photography in Hurghada">
<script>var x = "ignored";</script></head>
<body>
<h1>Welcome</h1>
<p>We shoot   weddings.</p>
<ul><li>Booking open</li><li>Contact us</li></ul>
<div>not collected</div>
</body></html>`

	res := Parse(page)

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Red Sea Studio", res.Title)
	assert.Equal(t, "Photography in Hurghada", res.Description)
	assert.Equal(t, "Welcome We shoot weddings. Booking open Contact us", res.Excerpt)
	assert.Equal(t, utf8.RuneCountInString(page), res.SourceLength)
}

func TestParseMissingTitleAndDescription(t *testing.T) {
	res := Parse(`<html><body><p>only text</p></body></html>`)

	assert.Equal(t, "", res.Title)
	assert.Equal(t, "", res.Description)
	assert.Equal(t, "only text", res.Excerpt)
}

func TestExtractTruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("a", 2500)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "<html><head><title>T</title></head><body><p>%s</p></body></html>", long)
	}))
	defer srv.Close()

	res := New(Config{}).Extract(context.Background(), srv.URL)

	require.True(t, res.OK())
	assert.Equal(t, srv.URL, res.URL)
	assert.Equal(t, MaxExcerptRunes, utf8.RuneCountInString(res.Excerpt))
	assert.Equal(t, strings.Repeat("a", 2000), res.Excerpt)
	assert.Greater(t, res.SourceLength, 2500)
}

func TestExtractTruncatesByRune(t *testing.T) {
	long := strings.Repeat("é", 2100)
	res := Parse("<p>" + long + "</p>")

	assert.Equal(t, 2000, utf8.RuneCountInString(res.Excerpt))
	assert.True(t, utf8.ValidString(res.Excerpt))
}

func TestExcerptBoundary(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantLen int
	}{
		{
			name:    "1999 characters unchanged",
			text:    strings.Repeat("a", 1999),
			want:    strings.Repeat("a", 1999),
			wantLen: 1999,
		},
		{
			name:    "2000 characters unchanged",
			text:    strings.Repeat("a", 1999) + "x",
			want:    strings.Repeat("a", 1999) + "x",
			wantLen: 2000,
		},
		{
			name:    "2001 characters cut after the 2000th",
			text:    strings.Repeat("a", 1999) + "xy",
			want:    strings.Repeat("a", 1999) + "x",
			wantLen: 2000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Truncate(tc.text, MaxExcerptRunes)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLen, utf8.RuneCountInString(got))

			res := Parse("<p>" + tc.text + "</p>")
			assert.Equal(t, tc.want, res.Excerpt)
		})
	}
}

func TestExtractCountsBodyBeyondParseLimit(t *testing.T) {
	extra := 1000
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		body := "<p>" + strings.Repeat("a", maxBodyBytes+extra-len("<p></p>")) + "</p>"
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	res := New(Config{}).Extract(context.Background(), srv.URL)

	require.True(t, res.OK())
	assert.Equal(t, maxBodyBytes+extra, res.SourceLength)
	assert.Equal(t, MaxExcerptRunes, utf8.RuneCountInString(res.Excerpt))
}

func TestRuneCounterSplitCharacter(t *testing.T) {
	var rc runeCounter
	b := []byte("hé")
	_, _ = rc.Write(b[:2])
	_, _ = rc.Write(b[2:])
	assert.Equal(t, runeCounter(2), rc)
}

func TestExtractNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res := New(Config{}).Extract(context.Background(), srv.URL)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Error, "404")
	assert.Equal(t, srv.URL, res.URL)
}

func TestExtractUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := New(Config{}).Extract(context.Background(), url)

	assert.Equal(t, StatusFailed, res.Status)
	assert.NotEmpty(t, res.Error)
}
