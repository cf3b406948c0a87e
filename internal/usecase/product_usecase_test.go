package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductUsecase_CreateProduct_MissingFields(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	//name/price必須
	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{Name: ptrStr("Coffee")})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	_, err = uc.CreateProduct(context.Background(), usecase.ProductInput{Price: ptrFloat(100)})
	he, ok = usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_CreateProduct_Success(t *testing.T) {
	r := new(ProductRepoMock)
	r.On("Create", mock.Anything, mock.Anything).
		Return(model.Product{ID: 1, Name: "Coffee", Price: 100}, nil)

	uc := usecase.NewProductUsecase(r)

	out, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:  ptrStr("Coffee"),
		Price: ptrFloat(100),
	})

	assert.NoError(t, err)
	assert.Equal(t, "product created successfully", out.Message)
	r.AssertExpectations(t)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	r := new(ProductRepoMock)
	r.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewProductUsecase(r)
	_, err := uc.GetProduct(context.Background(), 99)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	assert.Equal(t, "product not found", he.Message)
}

func TestProductUsecase_ListProducts_DBError(t *testing.T) {
	r := new(ProductRepoMock)
	r.On("List", mock.Anything).Return(nil, errors.New("down"))

	uc := usecase.NewProductUsecase(r)
	_, err := uc.ListProducts(context.Background())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
}

func TestProductUsecase_UpdateProduct_AppliesGivenFields(t *testing.T) {
	r := new(ProductRepoMock)
	r.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Coffee", Price: 100, Description: "dark"}, nil)
	r.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 1 && p.Name == "Coffee" && p.Price == 120 && p.Description == "dark"
	})).Return(nil)

	uc := usecase.NewProductUsecase(r)

	out, err := uc.UpdateProduct(context.Background(), 1, usecase.ProductInput{Price: ptrFloat(120)})

	assert.NoError(t, err)
	assert.Equal(t, "product updated successfully", out.Message)
	r.AssertExpectations(t)
}

func TestProductUsecase_DeleteProduct_NotFound(t *testing.T) {
	r := new(ProductRepoMock)
	r.On("DeleteByID", mock.Anything, int64(7)).Return(repo.ErrNotFound)

	uc := usecase.NewProductUsecase(r)
	_, err := uc.DeleteProduct(context.Background(), 7)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
