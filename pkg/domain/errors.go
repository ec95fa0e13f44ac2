package domain

import "fmt"

// ScrapeTimeoutError is returned when every scrape attempt yielded zero result rows
type ScrapeTimeoutError struct {
	Query    string
	Attempts int
}

func (e *ScrapeTimeoutError) Error() string {
	return fmt.Sprintf("timeout: no result rows for keyword %q after %d attempts", e.Query, e.Attempts)
}

// MarkupNotFoundError is returned when the expected embedded data marker is missing from a page
type MarkupNotFoundError struct {
	Marker string
}

func (e *MarkupNotFoundError) Error() string {
	return fmt.Sprintf("markup not found: %s", e.Marker)
}

// ExhaustedVocabularyError is returned by study mode when every word was already used.
// The used-words state is reset, so the next request succeeds.
type ExhaustedVocabularyError struct {
	Total int
}

func (e *ExhaustedVocabularyError) Error() string {
	return fmt.Sprintf("all %d study words used, state reset for the next request", e.Total)
}
