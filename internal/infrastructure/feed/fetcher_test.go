package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><item>
<title>Hopeful headline</title><link>https://example.org/a</link>
<description>short</description>
</item></channel></rss>`))
	}))
	defer server.Close()

	items, err := NewFetcher(server.Client()).FetchItems(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hopeful headline", items[0].Title)
}

func TestFetchItemsInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewFetcher(nil).FetchItems(context.Background(), "not a url")
	require.ErrorIs(t, err, ErrInvalidURL)
}

func TestFetchItemsNon2xxStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client()).FetchItems(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrNetwork)
}

func TestFetchItemsTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewFetcher(nil).FetchItems(context.Background(), url)
	require.ErrorIs(t, err, ErrNetwork)
}

func TestFetchItemsMalformedXML(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<rss><channel><item><title>broken`))
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client()).FetchItems(context.Background(), server.URL)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotEmpty(t, parseErr.Reason)
}
