package scrape

import (
	"net/http"
)

// addBrowserHeaders makes requests look like a japanese-locale desktop browser.
// Both scraped sites localize relative dates by Accept-Language, and date parsing depends on it.
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Connection", "keep-alive")
}
