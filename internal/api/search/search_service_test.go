package search

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/api/attractions"
	"github.com/visitauburn/go-auburn-trips/internal/api/content"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func newTestService() *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceImpl(attractions.NewRepository(), content.NewRepository(), time.Minute, logger)
}

func TestSearchRejectsShortQueries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.Empty(t, svc.Search(ctx, "", "", 0))
	assert.Empty(t, svc.Search(ctx, "a", "", 0))
	assert.Empty(t, svc.Search(ctx, "  a  ", "", 0), "whitespace does not count toward minimum length")
}

func TestSearchExactTitleRanksFirst(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "Overlook Park", "", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "Overlook Park", results[0].Title)
}

func TestSearchPrefixBeatsContains(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "gold", "", 0)
	require.NotEmpty(t, results)

	// Prefix matches ("Gold Rush Museum", "Gold Country Inn") must come
	// before titles that merely contain the query.
	sawContainsOnly := false
	for _, r := range results {
		title := strings.ToLower(r.Title)
		if strings.HasPrefix(title, "gold") {
			assert.False(t, sawContainsOnly, "prefix match %q ranked after a weaker match", r.Title)
		} else {
			sawContainsOnly = true
		}
	}
}

func TestSearchTieBreaksByTitle(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "museum", "", 0)
	require.NotEmpty(t, results)

	// Within a score tier, titles are sorted ascending.
	prefixTier := make([]string, 0)
	for _, r := range results {
		if strings.HasPrefix(strings.ToLower(r.Title), "museum") {
			prefixTier = append(prefixTier, r.Title)
		}
	}
	assert.True(t, sortedAscending(prefixTier))
}

func sortedAscending(titles []string) bool {
	for i := 1; i < len(titles); i++ {
		if titles[i-1] > titles[i] {
			return false
		}
	}
	return true
}

func TestSearchTypeFilter(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "auburn", types.SearchTypeEvent, 0)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, types.SearchTypeEvent, r.Type)
	}
}

func TestSearchLimit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	capped := svc.Search(ctx, "auburn", "", 3)
	assert.LessOrEqual(t, len(capped), 3)

	// Requests above the hard cap clamp to it rather than erroring.
	huge := svc.Search(ctx, "auburn", "", 10_000)
	assert.LessOrEqual(t, len(huge), MaxLimit)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	lower := svc.Search(ctx, "hidden falls", "", 0)
	upper := svc.Search(ctx, "HIDDEN FALLS", "", 0)
	assert.Equal(t, lower, upper)
}

func TestSearchCacheReturnsSameResults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := svc.Search(ctx, "winery", "", 0)
	second := svc.Search(ctx, "winery", "", 0)
	assert.Equal(t, first, second)
}

func TestSearchDroppedDocumentsExcluded(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "zzzzqqqq", "", 0)
	assert.Empty(t, results)
}

func TestSearchAttractionHref(t *testing.T) {
	svc := newTestService()

	results := svc.Search(context.Background(), "Lake Clementine Trail", types.SearchTypeAttraction, 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "/things-to-do/outdoor-adventures", results[0].Href)
}

func TestCleanSnippet(t *testing.T) {
	assert.Equal(t, "plain text", cleanSnippet("plain text"))
	assert.Equal(t, "bold and more", cleanSnippet("<b>bold</b> and <i>more</i>"))
	assert.Equal(t, "spaced out", cleanSnippet("  spaced \n\t out  "))

	long := strings.Repeat("word ", 60)
	snippet := cleanSnippet(long)
	assert.LessOrEqual(t, len(snippet), snippetMaxLength+3)
	assert.True(t, strings.HasSuffix(snippet, "..."))
}

func TestBuildSearchTextLowercasesAndJoins(t *testing.T) {
	text := buildSearchText("Title", "", "Category", "Auburn")
	assert.Equal(t, "title category auburn", text)
}
