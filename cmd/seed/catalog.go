package main

import (
	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"

	"github.com/shopspring/decimal"
)

type sampleProduct struct {
	name        string
	description string
	category    string
	quantity    int
	price       int64
	imageURL    string
}

var sampleCategories = []string{"Underwear", "Toys", "Board games", "Digital goods"}

var sampleProducts = []sampleProduct{
	{"Briefs", "Fancy briefs with a bow. 100% cotton. Color: pink.", "Underwear", 10, 499, ""},
	{"Rubik's Cube", "A puzzle of 27 small cubes joined together. Turn the layers to bring the cube back to its solved state.", "Toys", 3, 799, ""},
	{"Spinner", "A great fidget spinner that helps you focus and relax. Plastic. Color: blue.", "Toys", 5, 299, "https://cdn1.ozone.ru/s3/multimedia-5/6734098445.jpg"},
	{"Antistress paw", "Squeeze it and calm down. Plastic. Color: pink.", "Toys", 100, 199, "https://cdn1.ozone.ru/s3/multimedia-h/6231918929.jpg"},
	{"Bunker", "A discussion game about surviving the apocalypse.", "Board games", 1, 1599, "https://ir.ozone.ru/s3/multimedia-3/wc1000/6834912303.jpg"},
	{"Monopoly", "The classic family economic strategy game. Buy property, build houses, outplay your rivals.", "Board games", 12, 1999, "https://ir.ozone.ru/s3/multimedia-v/wc1000/6036360715.jpg"},
	{"Evolution", "A survival game where players create their own species and try to outlive a harsh nature.", "Board games", 8, 1399, "https://ir.ozone.ru/s3/multimedia-1-9/wc1000/7058630493.jpg"},
	{"Uno", "A card game where players race to empty their hand by matching colors and numbers.", "Board games", 10, 799, "https://ir.ozone.ru/s3/multimedia-c/wc1000/6466460832.jpg"},
	{"Imaginarium", "An imagination game of association cards and guessing what the others meant.", "Board games", 15, 1699, "https://ir.ozone.ru/s3/multimedia-f/wc1000/6615454047.jpg"},
	{"Jenga", "A game of skill and nerve. Build a tower of wooden blocks without knocking it down.", "Board games", 20, 1299, "https://ir.ozone.ru/s3/multimedia-k/wc1000/6846472532.jpg"},
	{"Minecraft account", "A Minecraft license. Email and password change included.", "Digital goods", 20, 1999, ""},
	{"Test card", "A card with a long description to check scrolling. A card with a long description to check scrolling. A card with a long description to check scrolling. A card with a long description to check scrolling.", "Toys", 1, 99, ""},
}

// seedCatalog inserts the sample categories and the products referencing
// them in one transaction. It reports false without writing anything when
// the catalog already has categories.
func seedCatalog(store repository.Store) (bool, error) {
	count, err := store.Categories().Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err = store.Transaction(func(tx repository.Store) error {
		ids := make(map[string]*model.Category, len(sampleCategories))
		for _, name := range sampleCategories {
			category := &model.Category{Name: name}
			if err := tx.Categories().Create(category); err != nil {
				return err
			}
			ids[name] = category
		}

		for _, sp := range sampleProducts {
			categoryID := ids[sp.category].ID
			product := &model.Product{
				Name:        sp.name,
				Description: sp.description,
				CategoryID:  &categoryID,
				Quantity:    sp.quantity,
				Price:       decimal.NewFromInt(sp.price),
				Unit:        "pcs",
				ImageURL:    sp.imageURL,
			}
			if err := tx.Products().Create(product); err != nil {
				return err
			}
		}
		return nil
	})
	return err == nil, err
}
