package service

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/model"
	"github.com/dovietdong/WebApiBase/internal/repository"
)

// ProductDTO is the transfer representation of a product.
type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// UpdateProductInput carries a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// ProductService exposes catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uint) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService builds a ProductService over the given repository.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, toProductDTO(&products[i]))
	}
	return dtos, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	dto := toProductDTO(product)
	return &dto, nil
}

// CreateProduct validates ranges and persists a new product. Rejections happen
// before the repository is touched.
func (s *productService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if input.Price.IsNegative() {
		return nil, errors.ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, errors.ErrInvalidStock
	}

	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price.Round(2),
		Stock:       input.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	dto := toProductDTO(product)
	return &dto, nil
}

// UpdateProduct applies a partial update: only fields present in the input
// overwrite stored values. UpdatedAt is set on every mutation.
func (s *productService) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{"updated_at": now}

	if input.Name != nil {
		product.Name = *input.Name
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, errors.ErrInvalidPrice
		}
		rounded := input.Price.Round(2)
		product.Price = rounded
		fields["price"] = rounded
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, errors.ErrInvalidStock
		}
		product.Stock = *input.Stock
		fields["stock"] = *input.Stock
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	product.UpdatedAt = &now

	dto := toProductDTO(product)
	return &dto, nil
}

// DeleteProduct removes a product, reporting not-found for an absent id.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return errors.ErrProductNotFound
	}
	return nil
}

func toProductDTO(p *model.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
