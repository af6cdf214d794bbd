package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
)

type ProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	Count(ctx context.Context) int
}

// productRepository is read-only after construction, so it needs no lock.
type productRepository struct {
	products map[string]models.Product
	ids      []string
}

func NewProductRepo(products []models.Product) ProductRepository {
	repo := &productRepository{
		products: make(map[string]models.Product, len(products)),
		ids:      make([]string, 0, len(products)),
	}

	for _, product := range products {
		if _, exists := repo.products[product.ID]; !exists {
			repo.ids = append(repo.ids, product.ID)
		}
		repo.products[product.ID] = product
	}

	return repo
}

func (r *productRepository) GetProductByID(_ context.Context, id string) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	return &product, nil
}

func (r *productRepository) ListProducts(_ context.Context) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(r.ids))

	for _, id := range r.ids {
		product := r.products[id]
		products = append(products, &product)
	}

	return products, nil
}

func (r *productRepository) Count(_ context.Context) int {
	return len(r.ids)
}

func seedDate(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func seedProduct(id, name, description string, price float64, category, date string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		CreatedAt:   seedDate(date),
		UpdatedAt:   seedDate(date),
	}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		seedProduct("prod-1", "Wireless Bluetooth Headphones",
			"Premium noise-cancelling wireless headphones with 30-hour battery life and crystal-clear sound quality.",
			200, "Electronics", "2024-01-15"),
		seedProduct("prod-2", "Smart Watch Pro",
			"Feature-rich smartwatch with health tracking, GPS, and water resistance up to 50 meters.",
			350, "Electronics", "2024-02-01"),
		seedProduct("prod-3", "Organic Cotton T-Shirt",
			"Comfortable 100% organic cotton t-shirt, available in multiple colors. Sustainable and eco-friendly.",
			30, "Clothing", "2024-01-20"),
		seedProduct("prod-4", "Leather Backpack",
			"Handcrafted genuine leather backpack with multiple compartments and laptop sleeve. Perfect for daily commute.",
			150, "Accessories", "2024-02-10"),
		seedProduct("prod-5", "Stainless Steel Water Bottle",
			"Insulated 32oz stainless steel water bottle keeps drinks cold for 24 hours or hot for 12 hours.",
			40, "Accessories", "2024-01-25"),
		seedProduct("prod-6", "Wireless Charging Pad",
			"Fast wireless charging pad compatible with all Qi-enabled devices. Sleek design with LED indicator.",
			25, "Electronics", "2024-02-05"),
		seedProduct("prod-7", "Running Shoes",
			"Lightweight running shoes with advanced cushioning technology and breathable mesh upper.",
			130, "Clothing", "2024-01-30"),
		seedProduct("prod-8", "Sunglasses Classic",
			"UV-protected polarized sunglasses with scratch-resistant lenses and premium frame materials.",
			80, "Accessories", "2024-02-15"),
		seedProduct("prod-9", "Portable Bluetooth Speaker",
			"Compact waterproof Bluetooth speaker with 360-degree sound and 20-hour battery life.",
			90, "Electronics", "2024-02-20"),
	}
}
