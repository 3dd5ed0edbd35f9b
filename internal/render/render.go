// Package render draws catalog views as plain text for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meur/gamevault/internal/catalog"
	"github.com/meur/gamevault/internal/donate"
	"github.com/meur/gamevault/internal/models"
)

const dateLayout = "2006-01-02"

// MsgNotFound replaces the detail view when the id is unknown
const MsgNotFound = "Game not found."

// Renderer writes views to w using locale-aware number formatting
type Renderer struct {
	w io.Writer
	p *message.Printer
}

// New creates a Renderer for the given locale
func New(w io.Writer, locale language.Tag) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(locale)}
}

// Catalog renders the visible page of v, or its status message
func (r *Renderer) Catalog(v *catalog.View) {
	if msg := v.Message(); msg != "" {
		r.Message(msg)
		return
	}
	for _, it := range v.Visible() {
		r.card(&it)
	}
	if v.TotalPages() > 1 {
		fmt.Fprintln(r.w, Pager(v))
	}
}

func (r *Renderer) card(it *models.Item) {
	fmt.Fprintf(r.w, "%s  [%s]\n", it.Title, it.ID)
	if it.Description != "" {
		fmt.Fprintf(r.w, "  %s\n", truncate(it.Description, 120))
	}
	r.p.Fprintf(r.w, "  Likes: %d   Date: %s\n\n", it.Likes, it.CreatedAt.Format(dateLayout))
}

// Pager formats the page controls, e.g. "< Prev  1 ... 4 [5] 6 ... 9  Next >".
// Disabled controls are shown in parentheses.
func Pager(v *catalog.View) string {
	var b strings.Builder
	if v.HasPrev() {
		b.WriteString("< Prev ")
	} else {
		b.WriteString("(< Prev)")
	}
	for _, l := range v.Labels() {
		b.WriteByte(' ')
		switch {
		case l.Ellipsis:
			b.WriteString("...")
		case l.Page == v.CurrentPage():
			fmt.Fprintf(&b, "[%d]", l.Page)
		default:
			fmt.Fprintf(&b, "%d", l.Page)
		}
	}
	if v.HasNext() {
		b.WriteString("  Next >")
	} else {
		b.WriteString("  (Next >)")
	}
	return b.String()
}

// Detail renders the full page of a single item
func (r *Renderer) Detail(it *models.Item) {
	fmt.Fprintln(r.w, it.Title)
	fmt.Fprintln(r.w, strings.Repeat("=", len([]rune(it.Title))))
	for _, img := range it.Images {
		fmt.Fprintf(r.w, "  image: %s\n", img)
	}
	if it.Description != "" {
		fmt.Fprintf(r.w, "\n%s\n", it.Description)
	}

	if it.BasicInformation != nil {
		section(r.w, "Basic information", it.BasicInformation)
	}
	if it.Details != nil {
		section(r.w, "Features", it.Details)
	}

	var names, downloads []string
	for _, p := range it.Platforms() {
		names = append(names, p.String())
		downloads = append(downloads, fmt.Sprintf("Download for %s: %s", p, it.Link(p)))
	}
	section(r.w, "Available platforms", names)
	section(r.w, "Download here", downloads)

	r.p.Fprintf(r.w, "\n%d likes   Published: %s\n", it.Likes, it.CreatedAt.Format(dateLayout))
}

// Donation renders donation instructions
func (r *Renderer) Donation(in donate.Instructions) {
	fmt.Fprintln(r.w, in.Title)
	fmt.Fprintf(r.w, "%s\n\nInstructions:\n", in.Subtitle)
	for i, step := range in.Steps {
		fmt.Fprintf(r.w, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintf(r.w, "\nQR code: %s\n", in.QRImage)
}

// Message writes a status line in place of a view
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, msg)
}

// NotFound is shown when a detail lookup misses
func (r *Renderer) NotFound() {
	r.Message(MsgNotFound)
}

func section(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, l := range lines {
		fmt.Fprintf(w, "  - %s\n", l)
	}
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
