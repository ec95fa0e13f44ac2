// Package study picks vocabulary words for the "auto" keyword without repeating
// a word until the whole list is used.
package study

import (
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/kwfeed/pkg/domain"
)

// AutoKeyword switches keyword selection to the vocabulary list
const AutoKeyword = "auto"

const usedWordsKey = "study:usedWords"

// Store keeps used words between requests
type Store interface {
	Get(key string) ([]string, bool)
	Set(key string, value []string, ttl time.Duration)
}

// Selector implements the study state machine. Used words live in the store with
// UsedTTL, once the list is exhausted the state is reset with ResetTTL and the
// current request fails.
type Selector struct {
	store    Store
	usedTTL  time.Duration
	resetTTL time.Duration
	pick     func(n int) int

	mu sync.Mutex
}

// Params for Selector
type Params struct {
	UsedTTL  time.Duration
	ResetTTL time.Duration
	Pick     func(n int) int // returns index in [0,n), random if nil
}

// NewSelector makes a selector backed by store
func NewSelector(store Store, params Params) *Selector {
	if params.UsedTTL == 0 {
		params.UsedTTL = 30 * 24 * time.Hour
	}
	if params.ResetTTL == 0 {
		params.ResetTTL = 7 * 24 * time.Hour
	}
	if params.Pick == nil {
		params.Pick = rand.Intn //nolint:gosec // non-cryptographic randomness is fine for word selection
	}
	return &Selector{store: store, usedTTL: params.UsedTTL, resetTTL: params.ResetTTL, pick: params.Pick}
}

// Select returns the keyword to search. Literal keywords are returned as is.
// For AutoKeyword a random unused word from vocab is returned and recorded as used.
func (s *Selector) Select(keyword string, vocab []string) (string, error) {
	if keyword != AutoKeyword {
		return keyword, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	used, _ := s.store.Get(usedWordsKey)
	available := make([]string, 0, len(vocab))
	for _, w := range vocab {
		if !slices.Contains(used, w) {
			available = append(available, w)
		}
	}

	if len(available) == 0 {
		s.store.Set(usedWordsKey, []string{}, s.resetTTL)
		lgr.Printf("[INFO] study vocabulary of %d words exhausted, used words reset", len(vocab))
		return "", &domain.ExhaustedVocabularyError{Total: len(vocab)}
	}

	selected := available[s.pick(len(available))]
	s.store.Set(usedWordsKey, append(slices.Clone(used), selected), s.usedTTL)
	lgr.Printf("[DEBUG] study word %q selected, %d left", selected, len(available)-1)
	return selected, nil
}

// Used returns words recorded as used
func (s *Selector) Used() []string {
	used, _ := s.store.Get(usedWordsKey)
	return used
}
