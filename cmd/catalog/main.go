package main

import (
	"flag"
	"log"
	"os"

	"go-warehouse/internal/config"
)

func main() {
	cfg := config.Load()

	opts := options{apiURL: cfg.Client.APIURL}
	flag.StringVar(&opts.apiURL, "api", opts.apiURL, "Base URL of the catalog API")
	flag.StringVar(&opts.filters.Name, "name", "", "Filter by name (case-insensitive pattern)")
	flag.BoolVar(&opts.filters.InStock, "in-stock", false, "Only products with quantity above zero")
	flag.StringVar(&opts.filters.CategoryID, "category", "", "Only products of this category id")
	flag.IntVar(&opts.pageSize, "page-size", cfg.Client.PageSize, "Products per page")
	flag.BoolVar(&opts.all, "all", false, "Keep scrolling until every product is loaded")
	flag.StringVar(&opts.viewID, "view", "", "Open the detail view of a product id")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}
