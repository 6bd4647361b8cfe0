package services

import (
	"context"
	"errors"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/utils"
)

type ProductService struct {
	products repo.ProductStore
}

// ProductUpdateInput carries only the fields the caller wants to change.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
	IsActive    *bool
}

func NewProductService(products repo.ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	created, err := s.products.Create(ctx, p)
	if err != nil {
		return nil, utils.ErrInternal("could not create product")
	}
	return created, nil
}

func (s *ProductService) List(ctx context.Context, filters repo.ProductFilters) ([]models.Product, int64, error) {
	filters.Page, filters.PerPage = utils.ClampPage(filters.Page, filters.PerPage)
	products, total, err := s.products.List(ctx, filters)
	if err != nil {
		return nil, 0, utils.ErrInternal("could not list products")
	}
	return products, total, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("product not found")
		}
		return nil, utils.ErrInternal("could not load product")
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, input ProductUpdateInput) (*models.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return nil, utils.ErrInternal("could not update product")
	}
	return updated, nil
}

func (s *ProductService) UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, utils.ErrValidation("stock quantity must not be negative", nil)
	}
	p, err := s.products.UpdateStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("product not found")
		}
		return nil, utils.ErrInternal("could not update stock")
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.ErrNotFound("product not found")
		}
		return utils.ErrInternal("could not delete product")
	}
	return nil
}
