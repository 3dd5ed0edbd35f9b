package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meur/gamevault/internal/catalog"
	"github.com/meur/gamevault/internal/config"
	"github.com/meur/gamevault/internal/donate"
	"github.com/meur/gamevault/internal/loader"
	"github.com/meur/gamevault/internal/models"
	"github.com/meur/gamevault/internal/render"
)

const usage = `usage: catalog <command> [flags]

commands:
  browse   list the catalog (-i for interactive paging)
  show     show one game by id
  donate   print donation instructions`

// stringList collects a repeatable flag
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	log.SetFlags(0)

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	out := render.New(os.Stdout, cfg.LocaleTag())
	client := loader.New(cfg.BaseURL, cfg.Timeout)
	ctx := context.Background()

	switch os.Args[1] {
	case "browse":
		err = browse(ctx, client, out, cfg, os.Args[2:])
	case "show":
		err = show(ctx, client, out, os.Args[2:])
	case "donate":
		out.Donation(donate.Binance())
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func browse(ctx context.Context, client *loader.Client, out *render.Renderer, cfg config.Client, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	query := fs.String("q", "", "Title search")
	order := fs.String("order", string(models.OrderRandom), "Sort order: "+orderNames())
	page := fs.Int("page", 1, "Page to show")
	interactive := fs.Bool("i", false, "Interactive paging")
	var tags, platforms stringList
	fs.Var(&tags, "tag", "Required tag (repeatable)")
	fs.Var(&platforms, "platform", "Accepted platform (repeatable)")
	fs.Parse(args)

	filters := models.Filters{Order: models.ParseOrder(*order), Tags: tags}
	for _, name := range platforms {
		p, err := models.ParsePlatform(name)
		if err != nil {
			return err
		}
		filters.Platforms = append(filters.Platforms, p)
	}

	v := catalog.NewView(catalog.Options{Locale: cfg.LocaleTag()})
	v.SetQuery(*query)
	v.SetFilters(filters)
	load(ctx, client, v)

	if *interactive {
		return newSession(v, out, os.Stdin, os.Stdout).run()
	}
	if *page != 1 && !v.GoTo(*page) {
		log.Printf("page %d is out of range, showing page %d", *page, v.CurrentPage())
	}
	out.Catalog(v)
	return nil
}

// load performs the single retrieval for a view. Failures end up in the
// view's state, never in the caller.
func load(ctx context.Context, client *loader.Client, v *catalog.View) {
	items, err := client.Items(ctx)
	if err != nil {
		v.Fail(err)
		return
	}
	v.SetItems(items)
}

func show(ctx context.Context, client *loader.Client, out *render.Renderer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: catalog show <id>")
	}
	item, err := client.Item(ctx, args[0])
	switch {
	case errors.Is(err, loader.ErrNotFound):
		out.NotFound()
	case err != nil:
		out.Message(catalog.MsgLoadFailed)
	default:
		out.Detail(item)
	}
	return nil
}
