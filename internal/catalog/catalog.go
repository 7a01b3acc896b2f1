package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyCatalog = errors.New("catalog has no categories")

// Category is one product family with the names and the inclusive price
// range products in it are drawn from.
type Category struct {
	Name     string   `yaml:"name"`
	Products []string `yaml:"products"`
	MinPrice int      `yaml:"min_price"`
	MaxPrice int      `yaml:"max_price"`
}

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name:     "Electronics",
				Products: []string{"Laptop", "Mouse", "Keyboard", "Monitor", "Printer", "Router", "Webcam"},
				MinPrice: 3000,
				MaxPrice: 60000,
			},
			{
				Name:     "Furniture",
				Products: []string{"Office Chair", "Desk", "Table", "Bookshelf", "Sofa"},
				MinPrice: 2000,
				MaxPrice: 30000,
			},
			{
				Name:     "Clothing",
				Products: []string{"T-Shirt", "Jeans", "Jacket", "Shoes", "Cap"},
				MinPrice: 500,
				MaxPrice: 5000,
			},
			{
				Name:     "Office",
				Products: []string{"Pen", "Notebook", "Stapler", "Calculator", "File Folder"},
				MinPrice: 200,
				MaxPrice: 3000,
			},
		},
	}
}

// Load reads a YAML catalog from path and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &c, nil
}

func (c *Catalog) Validate() error {
	if c == nil || len(c.Categories) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category: %s", cat.Name)
		}
		seen[cat.Name] = true

		if len(cat.Products) == 0 {
			return fmt.Errorf("category %s has no products", cat.Name)
		}
		if cat.MinPrice <= 0 {
			return fmt.Errorf("category %s: min_price must be positive, got %d", cat.Name, cat.MinPrice)
		}
		if cat.MaxPrice < cat.MinPrice {
			return fmt.Errorf("category %s: max_price %d is below min_price %d", cat.Name, cat.MaxPrice, cat.MinPrice)
		}
	}

	return nil
}

// Lookup returns the category with the given name.
func (c *Catalog) Lookup(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
