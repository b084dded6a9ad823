// Command cart is a terminal front end for the shopper's cart. It keeps
// the cart identifier in a JSON file on disk so the cart survives across
// invocations, the way a browser storefront keeps it in local storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"storefront/internal/cartsync"
	"storefront/internal/commerce"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/store"
)

const usage = `usage: cart [-store FILE] COMMAND [ARGS]

commands:
  show                      print the current cart
  count                     print the item count
  add VARIANT_ID [QTY]      add a variant to the cart
  update LINE_ID QTY        change a line quantity (0 removes)
  remove LINE_ID            remove a line
  clear                     forget the cart locally
  refresh                   re-fetch the cart from the platform
  checkout                  print the hosted checkout URL
`

func main() {
	_ = godotenv.Load()
	logger := log.New(os.Stderr, "[cart] ", 0)

	storePath := flag.String("store", defaultStorePath(), "path of the cart state file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if cfg.StoreDomain == "" || cfg.StorefrontToken == "" {
		logger.Fatalf("STORE_DOMAIN and STOREFRONT_ACCESS_TOKEN are required")
	}

	client := commerce.New(
		commerce.EndpointFor(cfg.StoreDomain, cfg.StorefrontVersion),
		cfg.StorefrontToken,
		http.DefaultClient,
	)
	cs := cartsync.New(client, store.NewFile(*storePath), cartsync.DefaultStoreKey, logger)
	ctx := context.Background()

	switch args[0] {
	case "show":
		cs.Initialize(ctx)
		finish(logger, cs)
		printCart(cs.Snapshot())
	case "count":
		cs.Initialize(ctx)
		finish(logger, cs)
		fmt.Println(cs.ItemCount())
	case "add":
		if len(args) < 2 {
			logger.Fatalf("add needs a variant id")
		}
		qty := 1
		if len(args) > 2 {
			qty = atoi(logger, args[2])
		}
		cs.AddLine(ctx, args[1], qty)
		finish(logger, cs)
		printCart(cs.Snapshot())
	case "update":
		if len(args) < 3 {
			logger.Fatalf("update needs a line id and a quantity")
		}
		cs.Initialize(ctx)
		finish(logger, cs)
		cs.UpdateLine(ctx, args[1], atoi(logger, args[2]))
		finish(logger, cs)
		printCart(cs.Snapshot())
	case "remove":
		if len(args) < 2 {
			logger.Fatalf("remove needs a line id")
		}
		cs.Initialize(ctx)
		finish(logger, cs)
		cs.RemoveLine(ctx, args[1])
		finish(logger, cs)
		printCart(cs.Snapshot())
	case "clear":
		cs.ClearCart(ctx)
		fmt.Println("cart cleared")
	case "refresh":
		cs.RefreshCart(ctx)
		finish(logger, cs)
		printCart(cs.Snapshot())
	case "checkout":
		cs.Initialize(ctx)
		finish(logger, cs)
		cart := cs.Snapshot()
		if cart == nil || cart.CheckoutURL == "" {
			logger.Fatalf("no checkout url available")
		}
		fmt.Println(cart.CheckoutURL)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func finish(logger *log.Logger, cs *cartsync.CartSync) {
	if msg := cs.Err(); msg != "" {
		logger.Fatalf("%s", msg)
	}
}

func atoi(logger *log.Logger, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		logger.Fatalf("not a number: %s", s)
	}
	return n
}

func printCart(cart *domain.Cart) {
	if cart == nil {
		fmt.Println("no cart")
		return
	}
	if len(cart.Lines) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, line := range cart.Lines {
		title := line.Merchandise.ProductTitle
		if line.Merchandise.Title != "" && line.Merchandise.Title != "Default Title" {
			title += " (" + line.Merchandise.Title + ")"
		}
		fmt.Printf("%-14s %3dx %-40s %s %s\n",
			line.ID, line.Quantity, title,
			line.Merchandise.Price.Amount.StringFixed(2),
			line.Merchandise.Price.CurrencyCode)
	}
	fmt.Printf("total: %s %s (%d items)\n",
		cart.Cost.Total.Amount.StringFixed(2),
		cart.Cost.Total.CurrencyCode,
		cart.TotalQuantity)
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront-cart.json"
	}
	return filepath.Join(home, ".storefront", "cart.json")
}
