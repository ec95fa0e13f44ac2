// Package service orchestrates feed requests: cache lookup, remote filter documents,
// upstream searches, filtering and feed assembly.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/kwfeed/pkg/cache"
	"github.com/umputun/kwfeed/pkg/domain"
	"github.com/umputun/kwfeed/pkg/filter"
	"github.com/umputun/kwfeed/pkg/remote"
)

//go:generate moq -out mocks/comment_searcher.go -pkg mocks -skip-ensure -fmt goimports . CommentSearcher
//go:generate moq -out mocks/video_searcher.go -pkg mocks -skip-ensure -fmt goimports . VideoSearcher
//go:generate moq -out mocks/config_loader.go -pkg mocks -skip-ensure -fmt goimports . ConfigLoader
//go:generate moq -out mocks/keyword_selector.go -pkg mocks -skip-ensure -fmt goimports . KeywordSelector

// cache key prefixes, one per route family
const (
	commentsSource = "comments"
	videosSource   = "videos"
	studySource    = "study"
)

// CommentSearcher searches the comment site
type CommentSearcher interface {
	Search(ctx context.Context, keyword string) ([]domain.Item, error)
	QueryURL(keyword string) string
}

// VideoSearcher searches the video platform
type VideoSearcher interface {
	Search(ctx context.Context, keyword string, minDuration time.Duration) ([]domain.Item, error)
}

// ConfigLoader loads remote filter documents
type ConfigLoader interface {
	SiteFilter(ctx context.Context, url string) remote.Result[remote.SiteFilter]
	Study(ctx context.Context, url string) remote.Result[remote.StudyConfig]
}

// KeywordSelector resolves study keywords, "auto" picks an unused vocabulary word
type KeywordSelector interface {
	Select(keyword string, vocab []string) (string, error)
}

// Params defines service settings
type Params struct {
	CommentsFilterURL string   // remote blocklist document for the comment site
	BlockedAuthors    []string // static author blocklist for the comment site
	VideosFilterURL   string   // remote blocklist and alias document for the video site
	VideosHomeURL     string   // canonical link of video and study feeds
	MinDuration       time.Duration
	FreshWindow       time.Duration
	LiveMarker        string
	StudyConfigURL    string
	Now               func() time.Time
}

// Service builds feeds for all routes
type Service struct {
	comments CommentSearcher
	videos   VideoSearcher
	loader   ConfigLoader
	selector KeywordSelector
	cache    *cache.TTL[[]domain.Item]
	params   Params
}

// New makes a service. The cache is shared by all routes and owned by the caller.
func New(comments CommentSearcher, videos VideoSearcher, loader ConfigLoader, selector KeywordSelector,
	itemsCache *cache.TTL[[]domain.Item], params Params) *Service {
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Service{comments: comments, videos: videos, loader: loader, selector: selector,
		cache: itemsCache, params: params}
}

// Comments searches the comment site without caching
func (s *Service) Comments(ctx context.Context, keyword string) (domain.Feed, error) {
	items, err := s.searchComments(ctx, keyword)
	if err != nil {
		return domain.Feed{}, err
	}
	return domain.Feed{Title: keyword, Link: s.comments.QueryURL(keyword), Items: items}, nil
}

// CachedComments searches the comment site, results are cached for ttl
func (s *Service) CachedComments(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error) {
	key := cache.Key(commentsSource, keyword, ttl)
	items, hit, err := s.cache.GetOrLoad(key, ttl, func() ([]domain.Item, error) {
		// the load is shared by concurrent callers, one caller leaving must not cancel it
		return s.searchComments(context.WithoutCancel(ctx), keyword)
	})
	if err != nil {
		return domain.Feed{}, err
	}
	return assemble(keyword, s.comments.QueryURL(keyword), items, hit), nil
}

// Videos searches the video platform for the keyword or its aliases, results are cached for ttl
func (s *Service) Videos(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error) {
	key := cache.Key(videosSource, keyword, ttl)
	items, hit, err := s.cache.GetOrLoad(key, ttl, func() ([]domain.Item, error) {
		return s.searchVideos(context.WithoutCancel(ctx), keyword)
	})
	if err != nil {
		return domain.Feed{}, err
	}
	return assemble(keyword, s.params.VideosHomeURL, items, hit), nil
}

// Study resolves the study keyword and searches the video platform for it, results are cached for ttl.
// The vocabulary document is required, its failure fails the request.
func (s *Service) Study(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error) {
	studyCfg, err := s.loader.Study(ctx, s.params.StudyConfigURL).FailFatal()
	if err != nil {
		return domain.Feed{}, fmt.Errorf("load study config: %w", err)
	}

	word, err := s.selector.Select(keyword, studyCfg.StudyList)
	if err != nil {
		return domain.Feed{}, err
	}
	lgr.Printf("[DEBUG] study keyword %q resolved to %q", keyword, word)

	key := cache.Key(studySource, word, ttl)
	items, hit, err := s.cache.GetOrLoad(key, ttl, func() ([]domain.Item, error) {
		found, err := s.videos.Search(context.WithoutCancel(ctx), word, 0)
		if err != nil {
			return nil, err
		}
		return filter.Apply(found,
			filter.Titles(studyCfg.BlockList.Title),
			filter.Authors(studyCfg.BlockList.Author),
		), nil
	})
	if err != nil {
		return domain.Feed{}, err
	}

	f := assemble(word, s.params.VideosHomeURL, items, hit)
	if !hit {
		f.Title = "Study - " + word
	}
	return f, nil
}

func (s *Service) searchComments(ctx context.Context, keyword string) ([]domain.Item, error) {
	siteFilter := s.loader.SiteFilter(ctx, s.params.CommentsFilterURL).FailOpen()

	items, err := s.comments.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	authors := make([]string, 0, len(s.params.BlockedAuthors)+len(siteFilter.AuthorBlocklist))
	authors = append(authors, s.params.BlockedAuthors...)
	authors = append(authors, siteFilter.AuthorBlocklist...)
	return filter.Apply(items, filter.Authors(authors), filter.Titles(siteFilter.TitleBlocklist)), nil
}

// searchVideos runs one search per expanded keyword in parallel and concatenates results in alias order
func (s *Service) searchVideos(ctx context.Context, keyword string) ([]domain.Item, error) {
	siteFilter := s.loader.SiteFilter(ctx, s.params.VideosFilterURL).FailOpen()
	keywords := siteFilter.Expand(keyword)
	if len(keywords) > 1 {
		lgr.Printf("[DEBUG] keyword %q expanded to %v", keyword, keywords)
	}

	results := make([][]domain.Item, len(keywords))
	g, gctx := errgroup.WithContext(ctx)
	for i, kw := range keywords {
		g.Go(func() error {
			found, err := s.videos.Search(gctx, kw, s.params.MinDuration)
			if err != nil {
				return fmt.Errorf("search videos for %q: %w", kw, err)
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []domain.Item
	for _, r := range results {
		items = append(items, r...)
	}
	return filter.Apply(items,
		filter.Authors(siteFilter.AuthorBlocklist),
		filter.Titles(siteFilter.TitleBlocklist),
		filter.Fresh(s.params.Now(), s.params.FreshWindow, s.params.LiveMarker),
	), nil
}

// assemble packages items into a feed, cached feeds are titled as such
func assemble(query, link string, items []domain.Item, cached bool) domain.Feed {
	title := query
	if cached {
		title = "Cached - " + query
	}
	return domain.Feed{Title: title, Link: link, Items: items, Cached: cached}
}
