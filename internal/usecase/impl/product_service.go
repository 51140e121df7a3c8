package impl

import (
	"context"
	"log/slog"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	logger      *slog.Logger
	productRepo repository.ProductRepository
}

// NewProductService creates the catalog service.
func NewProductService(logger *slog.Logger, productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		logger:      logger,
		productRepo: productRepo,
	}
}

// List returns the whole catalog.
func (s *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns one product.
func (s *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Create validates the pricing shape for the category and persists the product.
func (s *productService) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// Update replaces a product's fields.
func (s *productService) Update(ctx context.Context, id string, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product from the catalog.
func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// productFromInput enforces that exactly one of {sizes, price} is meaningful
// for the category: Pizza and Drink price per size, Extra prices flat.
func productFromInput(input usecase.ProductInput) (*entity.Product, error) {
	if !input.Category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product category")
	}

	if input.Category.UsesSizedPricing() {
		if len(input.Sizes) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(string(input.Category) + " products require sized pricing")
		}
		for size, price := range input.Sizes {
			if price < 0 {
				return nil, domainerrors.ErrValidationFailed.WithDetails("negative price for size " + size)
			}
		}
		input.Price = 0
	} else {
		if input.Price <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("Extra products require a flat price")
		}
		input.Sizes = nil
	}

	return &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Sizes:       input.Sizes,
		Price:       input.Price,
		IsAvailable: input.IsAvailable,
		Description: input.Description,
	}, nil
}
