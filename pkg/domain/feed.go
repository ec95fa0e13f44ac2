package domain

// Feed is the result handed to the rendering layer
type Feed struct {
	Title  string
	Link   string
	Items  []Item
	Cached bool // served from cache without upstream fetch
}
