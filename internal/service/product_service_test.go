package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func storedProduct() *model.Product {
	return &model.Product{
		ID:    1,
		Name:  "A",
		Price: decimal.NewFromInt(10),
		Stock: 5,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateProductInput
		expectedError error
	}{
		{
			name:  "valid product",
			input: CreateProductInput{Name: "Widget", Price: decimal.NewFromFloat(9.99), Stock: 3},
		},
		{
			name:          "negative price rejected",
			input:         CreateProductInput{Name: "Widget", Price: decimal.NewFromInt(-1), Stock: 3},
			expectedError: errors.ErrInvalidPrice,
		},
		{
			name:          "negative stock rejected",
			input:         CreateProductInput{Name: "Widget", Price: decimal.NewFromInt(1), Stock: -3},
			expectedError: errors.ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Product).ID = 9
				}).Return(nil)
			}

			svc := NewProductService(mockRepo)
			dto, err := svc.CreateProduct(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, dto)
				// Validation failures never reach the repository.
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(9), dto.ID)
				assert.Equal(t, tt.input.Name, dto.Name)
				assert.True(t, tt.input.Price.Equal(dto.Price))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_UpdateProduct_PartialMerge(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(storedProduct(), nil)

	var written map[string]interface{}
	mockRepo.On("UpdateFields", mock.Anything, uint(1), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(2).(map[string]interface{})
	}).Return(nil)

	newPrice := decimal.NewFromInt(12)
	svc := NewProductService(mockRepo)
	dto, err := svc.UpdateProduct(context.Background(), 1, UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, "A", dto.Name)
	assert.True(t, decimal.NewFromInt(12).Equal(dto.Price))
	assert.Equal(t, 5, dto.Stock)

	// Only the updated column and the timestamp are written.
	assert.Contains(t, written, "price")
	assert.Contains(t, written, "updated_at")
	assert.NotContains(t, written, "name")
	assert.NotContains(t, written, "stock")
	assert.NotContains(t, written, "description")

	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Failures(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	negativeStock := -1

	tests := []struct {
		name          string
		id            uint
		input         UpdateProductInput
		setupMock     func(*MockProductRepository)
		expectedError error
	}{
		{
			name:  "missing product",
			id:    99,
			input: UpdateProductInput{},
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrProductNotFound,
		},
		{
			name:  "negative price",
			id:    1,
			input: UpdateProductInput{Price: &negative},
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedProduct(), nil)
			},
			expectedError: errors.ErrInvalidPrice,
		},
		{
			name:  "negative stock",
			id:    1,
			input: UpdateProductInput{Stock: &negativeStock},
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedProduct(), nil)
			},
			expectedError: errors.ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			tt.setupMock(mockRepo)

			svc := NewProductService(mockRepo)
			dto, err := svc.UpdateProduct(context.Background(), tt.id, tt.input)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, dto)
			mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(true, nil)

		svc := NewProductService(mockRepo)
		assert.NoError(t, svc.DeleteProduct(context.Background(), 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(false, nil)

		svc := NewProductService(mockRepo)
		assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 99), errors.ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProductService(mockRepo)
	dto, err := svc.GetProduct(context.Background(), 42)

	assert.ErrorIs(t, err, errors.ErrProductNotFound)
	assert.Nil(t, dto)
	mockRepo.AssertExpectations(t)
}
