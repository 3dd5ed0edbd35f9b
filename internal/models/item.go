package models

import (
	"strings"
	"time"
)

// Item represents a game entry in the catalog
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	Images      []string  `json:"images"`

	BasicInformation []string `json:"basicInformation,omitempty"` // Display only
	Details          []string `json:"details,omitempty"`          // Searched for tags

	LinkAndroid *string `json:"linkAndroid,omitempty"`
	LinkWindows *string `json:"linkWindows,omitempty"`
	LinkMac     *string `json:"linkMac,omitempty"`
	LinkIOS     *string `json:"linkIos,omitempty"`
}

// Link returns the download link for a platform, or "" when the item is
// not available on it.
func (i *Item) Link(p Platform) string {
	link := p.link(i)
	if link == nil {
		return ""
	}
	return strings.TrimSpace(*link)
}

// Available reports whether the item has a usable link for the platform
func (i *Item) Available(p Platform) bool {
	return i.Link(p) != ""
}

// Platforms lists the platforms the item can be downloaded on
func (i *Item) Platforms() []Platform {
	var out []Platform
	for _, p := range AllPlatforms() {
		if i.Available(p) {
			out = append(out, p)
		}
	}
	return out
}

// DetailText joins the details into the single-line blob that tags are
// matched against.
func (i *Item) DetailText() string {
	return lineBreaks.Replace(strings.Join(i.Details, ","))
}

var lineBreaks = strings.NewReplacer("\n", " ", "\r", " ")

// LinkUpdate patches download links of an existing item. A nil field
// leaves the stored link untouched; an empty string clears it.
type LinkUpdate struct {
	LinkAndroid *string `json:"linkAndroid,omitempty"`
	LinkWindows *string `json:"linkWindows,omitempty"`
	LinkMac     *string `json:"linkMac,omitempty"`
	LinkIOS     *string `json:"linkIos,omitempty"`
}
