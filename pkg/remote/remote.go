// Package remote loads blocklists, keyword aliases and the study vocabulary from
// static json documents. Loading never decides the failure policy itself, callers
// pick FailOpen or FailFatal on the returned Result.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/getter.go -pkg mocks -skip-ensure -fmt goimports . Getter

// Getter fetches a document body
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// SiteFilter is the per-site filtering document
type SiteFilter struct {
	AuthorBlocklist    []string            `json:"authorBlocklist"`
	TitleBlocklist     []string            `json:"titleBlocklist"`
	WildcardKeywordMap map[string][]string `json:"wildcardKeywordMap"`
}

// Expand returns keywords to search for the requested keyword, the keyword itself
// unless the alias map has an entry for it
func (f SiteFilter) Expand(keyword string) []string {
	if aliases := f.WildcardKeywordMap[keyword]; len(aliases) > 0 {
		return aliases
	}
	return []string{keyword}
}

// StudyConfig is the study mode document with its own blocklists
type StudyConfig struct {
	StudyList []string `json:"studyList"`
	BlockList struct {
		Title  []string `json:"title"`
		Author []string `json:"author"`
	} `json:"blockList"`
}

// Result of a document load
type Result[T any] struct {
	URL   string
	Value T
	Err   error
}

// FailOpen returns the loaded value, or empty defaults if loading failed
func (r Result[T]) FailOpen() T {
	if r.Err != nil {
		lgr.Printf("[WARN] remote config %s unavailable, using empty defaults: %v", r.URL, r.Err)
		var empty T
		return empty
	}
	return r.Value
}

// FailFatal returns the loaded value or the load error
func (r Result[T]) FailFatal() (T, error) {
	return r.Value, r.Err
}

// Loader fetches and decodes remote documents, nothing is cached between calls
type Loader struct {
	getter Getter
}

// NewLoader makes a loader on top of getter
func NewLoader(getter Getter) *Loader {
	return &Loader{getter: getter}
}

// SiteFilter loads a site filter document. Empty url means no remote filter and
// yields empty lists without error.
func (l *Loader) SiteFilter(ctx context.Context, url string) Result[SiteFilter] {
	if url == "" {
		return Result[SiteFilter]{}
	}
	return load[SiteFilter](ctx, l.getter, url)
}

// Study loads the study vocabulary document
func (l *Loader) Study(ctx context.Context, url string) Result[StudyConfig] {
	if url == "" {
		return Result[StudyConfig]{Err: errors.New("study config url is not set")}
	}
	res := load[StudyConfig](ctx, l.getter, url)
	if res.Err == nil && res.Value.StudyList == nil {
		res.Err = fmt.Errorf("no studyList in %s", url)
	}
	return res
}

func load[T any](ctx context.Context, getter Getter, url string) Result[T] {
	res := Result[T]{URL: url}
	body, err := getter.Get(ctx, url)
	if err != nil {
		res.Err = fmt.Errorf("load %s: %w", url, err)
		return res
	}
	if err := json.Unmarshal(body, &res.Value); err != nil {
		res.Err = fmt.Errorf("decode %s: %w", url, err)
		return res
	}
	return res
}
