package search

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/api/attractions"
	"github.com/visitauburn/go-auburn-trips/internal/api/content"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

const (
	// MinQueryLength is the shortest query the typeahead will run.
	MinQueryLength = 2
	// DefaultLimit applies when the caller does not ask for a result cap.
	DefaultLimit = 20
	// MaxLimit is the hard cap on requested result counts.
	MaxLimit = 100

	snippetMaxLength = 160
)

// Relevance tiers, highest first. Every document gets the score of the best
// tier it matches; zero-score documents are dropped.
const (
	scoreExactTitle    = 1000
	scorePrefixTitle   = 500
	scoreTitleContains = 200
	scoreTextContains  = 100
	scoreTagMatch      = 50
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the typeahead search contract.
type Service interface {
	Search(ctx context.Context, query string, docType types.SearchDocumentType, limit int) []types.SearchDocument
}

// ServiceImpl ranks an in-memory document index built once at startup from
// the attraction catalog and the content registry. Repeated queries are
// served from a short-lived cache.
type ServiceImpl struct {
	logger    *slog.Logger
	documents []types.SearchDocument
	results   *cache.Cache
}

func NewServiceImpl(attractionRepo attractions.Repository, contentRepo content.Repository, cacheTTL time.Duration, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		documents: buildDocuments(attractionRepo, contentRepo),
		results:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

// Search runs the ranked typeahead query. Queries shorter than
// MinQueryLength return an empty result set rather than an error.
func (s *ServiceImpl) Search(ctx context.Context, query string, docType types.SearchDocumentType, limit int) []types.SearchDocument {
	_, span := otel.Tracer("SearchService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.query", query),
		attribute.String("search.type", string(docType)),
	))
	defer span.End()

	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLength {
		span.SetStatus(codes.Ok, "Query below minimum length")
		return []types.SearchDocument{}
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	cacheKey := fmt.Sprintf("%s|%s|%d", q, docType, limit)
	if cached, found := s.results.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("search.cache_hit", true))
		span.SetStatus(codes.Ok, "Search served from cache")
		return cached.([]types.SearchDocument)
	}

	type scored struct {
		doc   types.SearchDocument
		score int
	}
	ranked := make([]scored, 0)
	for _, doc := range s.documents {
		if docType != "" && doc.Type != docType {
			continue
		}
		if score := relevanceScore(doc, q); score > 0 {
			ranked = append(ranked, scored{doc: doc, score: score})
		}
	}

	// Score descending, then title ascending so equal scores are stable.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].doc.Title < ranked[j].doc.Title
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]types.SearchDocument, len(ranked))
	for i, r := range ranked {
		out[i] = r.doc
	}

	s.results.Set(cacheKey, out, cache.DefaultExpiration)

	s.logger.DebugContext(ctx, "Search executed",
		slog.String("query", q),
		slog.Int("results", len(out)))
	span.SetAttributes(attribute.Int("search.results", len(out)))
	span.SetStatus(codes.Ok, "Search executed")
	return out
}

func relevanceScore(doc types.SearchDocument, query string) int {
	title := strings.ToLower(doc.Title)
	switch {
	case title == query:
		return scoreExactTitle
	case strings.HasPrefix(title, query):
		return scorePrefixTitle
	case strings.Contains(title, query):
		return scoreTitleContains
	case strings.Contains(doc.Text, query):
		return scoreTextContains
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return scoreTagMatch
		}
	}
	return 0
}

func buildDocuments(attractionRepo attractions.Repository, contentRepo content.Repository) []types.SearchDocument {
	docs := make([]types.SearchDocument, 0)

	for _, a := range contentRepo.GetActivities() {
		docs = append(docs, types.SearchDocument{
			ID:       a.ID,
			Type:     types.SearchTypeActivity,
			Title:    a.Title,
			Href:     activityHref(a),
			Text:     buildSearchText(a.Title, a.Excerpt, a.Category, a.Location.City, a.Location.Address),
			Snippet:  cleanSnippet(firstNonEmpty(a.Excerpt, a.Title)),
			Tags:     tagList(a.Category),
			Location: firstNonEmpty(a.Location.City, "Auburn"),
		})
	}

	for _, a := range contentRepo.GetAccommodations() {
		docs = append(docs, types.SearchDocument{
			ID:       a.ID,
			Type:     types.SearchTypeAccommodation,
			Title:    a.Title,
			Href:     "/accommodations/" + a.Slug,
			Text:     buildSearchText(a.Title, a.Excerpt, a.Category, a.Location.City, a.Location.Address),
			Snippet:  cleanSnippet(firstNonEmpty(a.Excerpt, a.Title)),
			Tags:     tagList(a.Category),
			Location: firstNonEmpty(a.Location.City, "Auburn"),
		})
	}

	for _, d := range contentRepo.GetDining() {
		docs = append(docs, types.SearchDocument{
			ID:       d.ID,
			Type:     types.SearchTypeDining,
			Title:    d.Title,
			Href:     "/dining/" + d.Slug,
			Text:     buildSearchText(d.Title, d.Excerpt, d.Category, d.Location.City, d.Location.Address),
			Snippet:  cleanSnippet(firstNonEmpty(d.Excerpt, d.Title)),
			Tags:     tagList(d.Cuisine, d.Category),
			Location: firstNonEmpty(d.Location.City, "Auburn"),
		})
	}

	for _, e := range contentRepo.GetEvents() {
		docs = append(docs, types.SearchDocument{
			ID:       e.ID,
			Type:     types.SearchTypeEvent,
			Title:    e.Title,
			Href:     "/events/" + e.Slug,
			Text:     buildSearchText(e.Title, e.Excerpt, e.Category, e.Location.City, e.Location.Address),
			Snippet:  cleanSnippet(firstNonEmpty(e.Excerpt, e.Title)),
			Tags:     tagList(e.Category),
			Location: firstNonEmpty(e.Location.City, "Auburn"),
		})
	}

	for _, e := range contentRepo.GetEditorials() {
		docs = append(docs, types.SearchDocument{
			ID:       e.ID,
			Type:     types.SearchTypeEditorial,
			Title:    e.Title,
			Href:     "/discover/" + e.Slug,
			Text:     buildSearchText(e.Title, e.Excerpt, e.Category, "", ""),
			Snippet:  cleanSnippet(firstNonEmpty(e.Excerpt, e.Title)),
			Tags:     tagList(e.Category),
			Location: "Auburn",
		})
	}

	for _, a := range attractionRepo.GetAll() {
		href := "/things-to-do"
		if len(a.RelatedPages) > 0 {
			href = a.RelatedPages[0]
		}
		typeLabel := types.AttractionTypeLabels[a.Type]
		areaLabel := types.LocationAreaLabels[a.LocationArea]
		tags := append([]string{typeLabel}, a.Highlights...)
		docs = append(docs, types.SearchDocument{
			ID:       a.ID,
			Type:     types.SearchTypeAttraction,
			Title:    a.Name,
			Href:     href,
			Text:     buildSearchText(a.Name, a.ShortDescription, a.LongDescription, typeLabel, areaLabel),
			Snippet:  cleanSnippet(a.ShortDescription),
			Tags:     tags,
			Location: areaLabel,
		})
	}

	return docs
}

func activityHref(a types.ContentActivity) string {
	if a.SubHub != "" {
		return "/things-to-do/" + a.SubHub + "/" + a.Slug
	}
	return "/activities/" + a.Slug
}

// buildSearchText joins the matchable fields into one lowercase body.
func buildSearchText(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanSnippet strips markup, collapses whitespace, and truncates at a word
// boundary with a trailing ellipsis.
func cleanSnippet(text string) string {
	stripped := htmlTagPattern.ReplaceAllString(text, "")
	cleaned := strings.Join(strings.Fields(stripped), " ")
	if len(cleaned) <= snippetMaxLength {
		return cleaned
	}
	truncated := cleaned[:snippetMaxLength]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}

func tagList(tags ...string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
