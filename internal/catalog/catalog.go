// Package catalog maintains the perfume SKU catalog consumed by the run
// orchestrator.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive       Status = "Active"
	StatusDiscontinued Status = "Discontinued"
	StatusOutOfStock   Status = "Out of Stock"
)

type Product struct {
	ID           string  `json:"id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Size         string  `json:"size"`
	CurrentStock int     `json:"currentStock"`
	MinStock     int     `json:"minStock"`
	ReorderPoint int     `json:"reorderPoint"`
	Price        float64 `json:"price"`
	Supplier     string  `json:"supplier"`
	Status       Status  `json:"status"`
	LastUpdated  string  `json:"lastUpdated"`
}

// Input carries the editable fields of a product record.
type Input struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Size         string  `json:"size"`
	CurrentStock int     `json:"currentStock"`
	MinStock     int     `json:"minStock"`
	ReorderPoint int     `json:"reorderPoint"`
	Price        float64 `json:"price"`
	Supplier     string  `json:"supplier"`
	Status       Status  `json:"status"`
}

// validate enforces the write-time rules: sku and name are required, and
// sku must be unique among all products except the record being edited.
// A corrupted persisted catalog may still contain duplicates; that is
// tolerated on read.
func validate(products []Product, in Input, editingID string) error {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return fmt.Errorf("SKU is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	for _, p := range products {
		if p.SKU == sku && p.ID != editingID {
			return fmt.Errorf("SKU %q already exists", sku)
		}
	}
	return nil
}

func apply(p Product, in Input) Product {
	p.SKU = strings.TrimSpace(in.SKU)
	p.Name = strings.TrimSpace(in.Name)
	p.Brand = strings.TrimSpace(in.Brand)
	p.Category = in.Category
	p.Size = in.Size
	p.CurrentStock = in.CurrentStock
	p.MinStock = in.MinStock
	p.ReorderPoint = in.ReorderPoint
	p.Price = in.Price
	p.Supplier = strings.TrimSpace(in.Supplier)
	p.Status = in.Status
	p.LastUpdated = time.Now().Format("2006-01-02")
	return p
}

// Add prepends a new product to the catalog.
func Add(products []Product, in Input) ([]Product, Product, error) {
	if err := validate(products, in, ""); err != nil {
		return products, Product{}, err
	}
	p := apply(Product{ID: "prod-" + uuid.NewString()}, in)
	return append([]Product{p}, products...), p, nil
}

// Update edits the product with the given id in place.
func Update(products []Product, id string, in Input) ([]Product, error) {
	if err := validate(products, in, id); err != nil {
		return products, err
	}
	out := make([]Product, len(products))
	copy(out, products)
	for i, p := range out {
		if p.ID == id {
			out[i] = apply(p, in)
			return out, nil
		}
	}
	return products, fmt.Errorf("product %q not found", id)
}

// Remove deletes the product with the given id; unknown ids are a no-op.
func Remove(products []Product, id string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// Requestable returns the subset embedded in Manager-agent briefs: Active
// and Out of Stock products. Discontinued SKUs cannot be restocked, so they
// are excluded from analysis.
func Requestable(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.Status == StatusActive || p.Status == StatusOutOfStock {
			out = append(out, p)
		}
	}
	return out
}

type Stats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	LowStock   int     `json:"lowStock"`
	OutOfStock int     `json:"outOfStock"`
	StockValue float64 `json:"stockValue"`
}

func Summarize(products []Product) Stats {
	s := Stats{Total: len(products)}
	for _, p := range products {
		if p.Status == StatusActive {
			s.Active++
			if p.CurrentStock < p.MinStock {
				s.LowStock++
			}
		}
		if p.CurrentStock <= 0 || p.Status == StatusOutOfStock {
			s.OutOfStock++
		}
		s.StockValue += float64(p.CurrentStock) * p.Price
	}
	return s
}
