package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	mockRepo "forno/internal/mocks/repository"
	"forno/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewProductService(logger, productRepo)

	return service, productRepo
}

func TestProductService_Create_SizedCategory(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	product, err := service.Create(ctx, usecase.ProductInput{
		Name:        "Margherita",
		Category:    entity.CategoryPizza,
		Sizes:       map[string]float64{"Small": 8, "Large": 12},
		Price:       99, // Ignored for sized categories.
		IsAvailable: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
	assert.Equal(t, 12.0, product.Sizes["Large"])
}

func TestProductService_Create_FlatCategory(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	product, err := service.Create(ctx, usecase.ProductInput{
		Name:        "Garlic dip",
		Category:    entity.CategoryExtra,
		Price:       1.5,
		Sizes:       map[string]float64{"Small": 1}, // Ignored for flat categories.
		IsAvailable: true,
	})

	require.NoError(t, err)
	assert.Nil(t, product.Sizes)
	assert.Equal(t, 1.5, product.Price)
}

func TestProductService_Create_RejectsBadPricingShape(t *testing.T) {
	service, _ := createTestProductService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{
			name:  "pizza without sizes",
			input: usecase.ProductInput{Name: "Margherita", Category: entity.CategoryPizza},
		},
		{
			name: "negative size price",
			input: usecase.ProductInput{
				Name: "Cola", Category: entity.CategoryDrink,
				Sizes: map[string]float64{"0.5L": -1},
			},
		},
		{
			name:  "extra without price",
			input: usecase.ProductInput{Name: "Dip", Category: entity.CategoryExtra},
		},
		{
			name:  "unknown category",
			input: usecase.ProductInput{Name: "Thing", Category: entity.ProductCategory("Dessert"), Price: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrProductNotFound)

	_, err := service.Update(ctx, "ghost", usecase.ProductInput{
		Name: "Margherita", Category: entity.CategoryPizza, Sizes: map[string]float64{"Small": 8},
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Update_ReplacesFields(t *testing.T) {
	service, productRepo := createTestProductService(t)

	ctx := context.Background()
	productRepo.EXPECT().FindByID(ctx, "prod-1").
		Return(&entity.Product{ID: "prod-1", Name: "Old"}, nil)
	productRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	product, err := service.Update(ctx, "prod-1", usecase.ProductInput{
		Name: "Margherita", Category: entity.CategoryPizza, Sizes: map[string]float64{"Small": 8},
	})

	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, "Margherita", product.Name)
}
