package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 商品APIの共通レスポンス
type ProductEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// POST/PUT /productsの入力DTO
type ProductInput struct {
	Name        *string
	Price       *float64
	Description string
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductEnvelope, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "failed to retrieve products")
	}

	return ProductEnvelope{Message: "products retrieved successfully", Data: products}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (ProductEnvelope, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductEnvelope{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductEnvelope{Message: "product retrieved successfully", Data: p}, nil
}

// CreateProduct はname/price必須。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (ProductEnvelope, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Price == nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusBadRequest, "name and price are required")
	}
	if *in.Price < 0 {
		return ProductEnvelope{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        *in.Name,
		Price:       *in.Price,
		Description: in.Description,
	})
	if err != nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductEnvelope{Message: "product created successfully", Data: p}, nil
}

// UpdateProduct は部分更新ではなく、送られた値で上書きする。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (ProductEnvelope, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductEnvelope{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return ProductEnvelope{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		p.Price = *in.Price
	}
	if in.Description != "" {
		p.Description = in.Description
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return ProductEnvelope{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductEnvelope{Message: "product updated successfully", Data: p}, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) (ProductEnvelope, error) {
	err := u.productRepo.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductEnvelope{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductEnvelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductEnvelope{Message: "product deleted successfully"}, nil
}
