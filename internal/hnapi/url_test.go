package hnapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildURL_Format(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://hn.algolia.com/api/v1/search?query=react&page=0",
		BuildURL(DefaultBaseURL, "react", 0),
	)
	// хвостовой слеш в base не дублируется.
	require.Equal(t, "http://h/api/search?query=go&page=7", BuildURL("http://h/api/", "go", 7))
}

// TestExtractSearchTerm_RoundTrip - ExtractSearchTerm(BuildURL(term, page)) == term
// для строк без '?' и '&'.
func TestExtractSearchTerm_RoundTrip(t *testing.T) {
	t.Parallel()

	require.Equal(t, "react", ExtractSearchTerm(BuildURL(DefaultBaseURL, "react", 0)))

	terms := []string{"react", "", "Go generics", "c++", "a=b", "query=", "ünïcode"}
	for _, term := range terms {
		for _, page := range []int{0, 1, 42} {
			require.Equal(t, term, ExtractSearchTerm(BuildURL(DefaultBaseURL, term, page)), "term=%q page=%d", term, page)
		}
	}
}

func TestExtractSearchTerm_Malformed(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", ExtractSearchTerm("https://example.org/no-query"))
	require.Equal(t, "", ExtractSearchTerm("https://example.org/a&b?c"))
}

func TestExtractPage(t *testing.T) {
	t.Parallel()

	page, ok := ExtractPage(BuildURL(DefaultBaseURL, "redux", 3))
	require.True(t, ok)
	require.Equal(t, 3, page)

	_, ok = ExtractPage("https://example.org/search?query=x&limit=1")
	require.False(t, ok)

	_, ok = ExtractPage("https://example.org/search?query=x&page=-1")
	require.False(t, ok)
}
