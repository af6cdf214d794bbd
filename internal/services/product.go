package service

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
)

type ProductService interface {
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) GetProductByID(ctx context.Context, id string) (product *models.Product, err error) {
	defer recoverInternal("Failed to fetch product", &product, &err)

	product, err = s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ProductNotFoundError(fmt.Sprintf("Product with ID %s not found", id)).WithError(err)
		}
		return nil, errors.InternalError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) (products []*models.Product, err error) {
	defer recoverInternal("Failed to fetch products", &products, &err)

	products, err = s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to fetch products").WithError(err)
	}

	return products, nil
}
