package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title type="html">ArXiv Query: search_query=cat:quant-ph</title>
  <id>http://arxiv.org/api/example</id>
  <updated>2024-06-07T00:00:00-04:00</updated>
  <entry>
    <id>http://arxiv.org/abs/2406.00001v1</id>
    <updated>2024-06-06T12:00:00Z</updated>
    <published>2024-06-06T12:00:00Z</published>
    <title> Entangled widgets </title>
    <summary>  We study entangled widgets.  </summary>
    <author><name>Alice Example</name></author>
    <link href="http://arxiv.org/abs/2406.00001v1" rel="alternate" type="text/html"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2406.00002v1</id>
    <updated>2024-06-06T09:30:00Z</updated>
    <published>2024-06-06T09:30:00Z</published>
    <title>Classical gadgets</title>
    <summary>We revisit classical gadgets.</summary>
    <author><name>Bob Example</name></author>
    <link href="http://arxiv.org/abs/2406.00002v1" rel="alternate" type="text/html"/>
  </entry>
</feed>`

const emptyAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title type="html">ArXiv Query: search_query=cat:quant-ph</title>
  <id>http://arxiv.org/api/example</id>
  <updated>2024-06-07T00:00:00-04:00</updated>
</feed>`

func TestSearchParsesEntries(t *testing.T) {
	var gotParams url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		fmt.Fprint(w, sampleAtomFeed)
	}))
	defer ts.Close()

	s := ArxivSource{BaseURL: ts.URL}
	papers, err := s.Search(context.Background(), "cat:quant-ph AND submittedDate:[202406060000 TO 202406062359]", 2)
	require.NoError(t, err)
	require.Len(t, papers, 2)

	assert.Equal(t, "Entangled widgets", papers[0].Title)
	assert.Equal(t, "We study entangled widgets.", papers[0].Summary)
	assert.Equal(t, "Classical gadgets", papers[1].Title)
	assert.Equal(t, "We revisit classical gadgets.", papers[1].Summary)

	assert.Equal(t, "cat:quant-ph AND submittedDate:[202406060000 TO 202406062359]", gotParams.Get("search_query"))
	assert.Equal(t, "0", gotParams.Get("start"))
	assert.Equal(t, "2", gotParams.Get("max_results"))
	assert.Equal(t, "submittedDate", gotParams.Get("sortBy"))
	assert.Equal(t, "descending", gotParams.Get("sortOrder"))
}

func TestSearchEmptyFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, emptyAtomFeed)
	}))
	defer ts.Close()

	s := ArxivSource{BaseURL: ts.URL}
	papers, err := s.Search(context.Background(), "cat:quant-ph", 2)
	require.NoError(t, err)
	assert.Empty(t, papers)
}

func TestSearchServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := ArxivSource{BaseURL: ts.URL}
	_, err := s.Search(context.Background(), "cat:quant-ph", 2)
	assert.Error(t, err)
}

func TestSearchContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sampleAtomFeed)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := ArxivSource{BaseURL: ts.URL}
	_, err := s.Search(ctx, "cat:quant-ph", 2)
	assert.Error(t, err)
}
