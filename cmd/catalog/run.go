package main

import (
	"fmt"
	"io"

	"go-warehouse/internal/client"
	"go-warehouse/internal/model"
	"go-warehouse/internal/store"
	"go-warehouse/internal/view"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type options struct {
	apiURL   string
	filters  view.Filters
	pageSize int
	all      bool
	viewID   string
}

func run(w io.Writer, opts options) error {
	s := store.New(client.New(opts.apiURL))

	if err := s.FetchCategories(); err != nil {
		return fmt.Errorf("%s: %w", s.Categories().Error, err)
	}
	categories := s.Categories().Categories

	if opts.viewID != "" {
		return showDetail(w, s, categories, opts.viewID)
	}

	pager := view.NewPager(s, opts.pageSize)
	if _, err := pager.Reset(); err != nil {
		return fmt.Errorf("%s: %w", s.Products().Error, err)
	}

	// Scrolling: each rendered page puts a new observer on its last row,
	// and the row coming into sight asks for the next page.
	for opts.all && pager.State() == view.Idle {
		products := s.Products().Products
		if len(products) == 0 {
			break
		}
		observer := pager.Observe(products[len(products)-1].ID.String())
		started, err := observer.Intersect(true)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Products().Error, err)
		}
		if !started {
			break
		}
	}

	state := s.Products()
	printCategories(w, categories)
	printProducts(w, categories, opts.filters.Apply(state.Products))
	fmt.Fprintf(w, "\nLoaded %d of %d products (%s)\n", len(state.Products), state.Total, pager.State())
	return nil
}

func showDetail(w io.Writer, s *store.Store, categories []model.Category, id string) error {
	if err := s.FetchProduct(id); err != nil {
		return fmt.Errorf("%s: %w", s.Products().Error, err)
	}

	detail, ok := view.OpenDetail(id, s, categories, view.NewViewCounter()).Render()
	if !ok {
		return fmt.Errorf("product %s not found", id)
	}

	p := detail.Product
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"Name", p.Name},
		{"Description", p.Description},
		{"Category", detail.CategoryName},
		{"Quantity", fmt.Sprintf("%d %s", p.Quantity, p.Unit)},
		{"Price", p.Price.StringFixed(2)},
	})
	if p.ImageURL != "" {
		t.AppendRow(table.Row{"Image", p.ImageURL})
	}
	t.AppendRow(table.Row{"Views", detail.Views})
	t.Render()
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func printCategories(w io.Writer, categories []model.Category) {
	t := newTable(w)
	t.SetTitle("Categories")
	t.AppendHeader(table.Row{"ID", "Name"})
	for _, c := range categories {
		t.AppendRow(table.Row{c.ID, c.Name})
	}
	t.Render()
}

func printProducts(w io.Writer, categories []model.Category, products []model.Product) {
	t := newTable(w)
	t.SetTitle("Products")
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Qty", "Price"})
	for _, p := range products {
		t.AppendRow(table.Row{
			p.ID,
			p.Name,
			view.CategoryName(categories, p),
			fmt.Sprintf("%d %s", p.Quantity, p.Unit),
			p.Price.StringFixed(2),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Qty", Align: text.AlignRight},
		{Name: "Price", Align: text.AlignRight},
	})
	t.Render()
}
