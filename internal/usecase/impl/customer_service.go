package impl

import (
	"context"
	"log/slog"
	"time"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type customerService struct {
	logger       *slog.Logger
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewCustomerService creates the customer directory service.
func NewCustomerService(
	logger *slog.Logger,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) usecase.CustomerUsecase {
	return &customerService{
		logger:       logger,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// List returns all customers with their derived aggregates filled in.
func (s *customerService) List(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	for _, customer := range customers {
		if err := s.aggregate(ctx, customer); err != nil {
			return nil, err
		}
	}

	return customers, nil
}

// Get returns one customer with aggregates filled in.
func (s *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	if err := s.aggregate(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// aggregate folds the customer's orders into the derived view: every order
// counts, cancelled orders are excluded from spend, and the newest timestamp
// wins as last order date. Recomputed on every read, no caching.
func (s *customerService) aggregate(ctx context.Context, customer *entity.Customer) error {
	orders, err := s.orderRepo.FindByCustomerPhone(ctx, customer.Phone)
	if err != nil {
		return errors.Wrap(err, "failed to fold customer orders")
	}

	customer.OrderCount = 0
	customer.TotalSpent = 0
	customer.LastOrderDate = time.Time{}

	for _, order := range orders {
		customer.OrderCount++
		if order.Status != entity.StatusCancelled {
			customer.TotalSpent += order.Total
		}
		if order.Timestamp.After(customer.LastOrderDate) {
			customer.LastOrderDate = order.Timestamp
		}
	}

	return nil
}

// Create persists a new customer under a unique normalized phone.
func (s *customerService) Create(ctx context.Context, input usecase.CustomerInput) (*entity.Customer, error) {
	phone := entity.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone number must contain digits")
	}

	if _, err := s.customerRepo.FindByPhone(ctx, phone); err == nil {
		return nil, domainerrors.ErrDuplicatePhone
	} else if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to check phone uniqueness")
	}

	customer := &entity.Customer{
		Name:         input.Name,
		Phone:        phone,
		Address:      input.Address,
		LocationLink: input.LocationLink,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// Update replaces a customer's fields, keeping the phone unique.
func (s *customerService) Update(ctx context.Context, id string, input usecase.CustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	phone := entity.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone number must contain digits")
	}

	if phone != customer.Phone {
		if other, err := s.customerRepo.FindByPhone(ctx, phone); err == nil && other.ID != id {
			return nil, domainerrors.ErrDuplicatePhone
		} else if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to check phone uniqueness")
		}
	}

	customer.Name = input.Name
	customer.Phone = phone
	customer.Address = input.Address
	customer.LocationLink = input.LocationLink

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	if err := s.aggregate(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// Delete removes the customer record. Their order history is retained.
func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}

// History returns the customer's orders, newest first.
func (s *customerService) History(ctx context.Context, id string) ([]*entity.Order, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	orders, err := s.orderRepo.FindByCustomerPhone(ctx, customer.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	return orders, nil
}
