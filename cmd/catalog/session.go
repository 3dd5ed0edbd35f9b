package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meur/gamevault/internal/catalog"
	"github.com/meur/gamevault/internal/models"
	"github.com/meur/gamevault/internal/render"
)

const clearScreen = "\033[H\033[2J"

var help = fmt.Sprintf(`n/p: next/previous page   <number>: go to page
/<text>: search titles    o <order>: sort (%s)
t <tag>: toggle tag       P <platform>: toggle platform (%s)
q: quit`, orderNames(), platformNames())

func orderNames() string {
	var names []string
	for _, o := range models.Orders() {
		names = append(names, string(o))
	}
	return strings.Join(names, ", ")
}

func platformNames() string {
	var names []string
	for _, p := range models.AllPlatforms() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

// session drives a View from line commands
type session struct {
	view *catalog.View
	out  *render.Renderer
	in   *bufio.Scanner
	w    io.Writer
}

func newSession(v *catalog.View, out *render.Renderer, in io.Reader, w io.Writer) *session {
	s := &session{view: v, out: out, in: bufio.NewScanner(in), w: w}
	v.OnNavigate = func(int) { fmt.Fprint(w, clearScreen) }
	return s
}

func (s *session) run() error {
	s.draw()
	for {
		fmt.Fprint(s.w, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		if quit := s.exec(strings.TrimSpace(s.in.Text())); quit {
			return nil
		}
	}
}

func (s *session) draw() {
	s.out.Catalog(s.view)
	f := s.view.Filters()
	fmt.Fprintf(s.w, "order: %s  tags: %v  platforms: %v  query: %q\n",
		models.ParseOrder(string(f.Order)).Label(), f.Tags, f.Platforms, s.view.Query())
}

// exec applies one command line and reports whether to quit
func (s *session) exec(line string) bool {
	v := s.view
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch {
	case line == "":
		return false
	case line == "q":
		return true
	case line == "?" || line == "h":
		fmt.Fprintln(s.w, help)
		return false
	case line == "n":
		if !v.Next() {
			return false
		}
	case line == "p":
		if !v.Prev() {
			return false
		}
	case strings.HasPrefix(line, "/"):
		v.SetQuery(strings.TrimPrefix(line, "/"))
	case cmd == "o":
		f := v.Filters()
		f.Order = models.ParseOrder(arg)
		v.SetFilters(f)
	case cmd == "t" && arg != "":
		v.SetFilters(v.Filters().ToggleTag(arg))
	case cmd == "P":
		p, err := models.ParsePlatform(arg)
		if err != nil {
			fmt.Fprintln(s.w, err)
			return false
		}
		v.SetFilters(v.Filters().TogglePlatform(p))
	default:
		page, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.w, help)
			return false
		}
		if !v.GoTo(page) {
			return false
		}
	}
	s.draw()
	return false
}
