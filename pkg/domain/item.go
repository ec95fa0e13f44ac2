package domain

import "time"

// Item is a single feed entry produced by a scraped source
type Item struct {
	Title         string
	Author        string
	Description   string // html fragment, may start with an inline <img>
	Published     time.Time
	Link          string // absolute url
	PublishedText string // raw source-specific relative time, e.g. "3時間前"
}

// Valid reports whether the item carries the fields required for inclusion
func (i Item) Valid() bool {
	return i.Title != "" && i.Link != ""
}
