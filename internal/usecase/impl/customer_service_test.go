package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	mockRepo "forno/internal/mocks/repository"
	"forno/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCustomerService(t *testing.T) (
	usecase.CustomerUsecase,
	*mockRepo.MockCustomerRepository,
	*mockRepo.MockOrderRepository,
) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewCustomerService(logger, customerRepo, orderRepo)

	return service, customerRepo, orderRepo
}

func TestCustomerService_Get_FoldsOrderAggregates(t *testing.T) {
	service, customerRepo, orderRepo := createTestCustomerService(t)

	ctx := context.Background()
	older := time.Date(2026, 8, 20, 19, 0, 0, 0, time.UTC)
	newest := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)

	customerRepo.EXPECT().FindByID(ctx, "cust-1").
		Return(&entity.Customer{ID: "cust-1", Name: "Mario", Phone: "0501234567"}, nil)
	orderRepo.EXPECT().FindByCustomerPhone(ctx, "0501234567").Return([]*entity.Order{
		{Total: 30, Status: entity.StatusDelivered, Timestamp: newest},
		{Total: 20, Status: entity.StatusArchived, Timestamp: older},
		{Total: 50, Status: entity.StatusCancelled, Timestamp: older.Add(time.Hour)},
	}, nil)

	customer, err := service.Get(ctx, "cust-1")

	require.NoError(t, err)
	// Every order counts, cancelled spend does not, newest timestamp wins.
	assert.Equal(t, 3, customer.OrderCount)
	assert.Equal(t, 50.0, customer.TotalSpent)
	assert.Equal(t, newest, customer.LastOrderDate)
}

func TestCustomerService_Get_NoOrders(t *testing.T) {
	service, customerRepo, orderRepo := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByID(ctx, "cust-1").
		Return(&entity.Customer{ID: "cust-1", Phone: "0501234567"}, nil)
	orderRepo.EXPECT().FindByCustomerPhone(ctx, "0501234567").Return(nil, nil)

	customer, err := service.Get(ctx, "cust-1")

	require.NoError(t, err)
	assert.Equal(t, 0, customer.OrderCount)
	assert.Equal(t, 0.0, customer.TotalSpent)
	assert.True(t, customer.LastOrderDate.IsZero())
}

func TestCustomerService_Create_NormalizesPhone(t *testing.T) {
	service, customerRepo, _ := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByPhone(ctx, "994501234567").Return(nil, repository.ErrCustomerNotFound)
	customerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	customer, err := service.Create(ctx, usecase.CustomerInput{
		Name:  "Mario",
		Phone: "+994 (50) 123-45-67",
	})

	require.NoError(t, err)
	assert.Equal(t, "994501234567", customer.Phone)
}

func TestCustomerService_Create_RejectsDuplicatePhone(t *testing.T) {
	service, customerRepo, _ := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByPhone(ctx, "0501234567").
		Return(&entity.Customer{ID: "cust-1", Phone: "0501234567"}, nil)

	_, err := service.Create(ctx, usecase.CustomerInput{Name: "Mario", Phone: "050 123 45 67"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePhone)
}

func TestCustomerService_Create_RequiresDigits(t *testing.T) {
	service, _, _ := createTestCustomerService(t)

	_, err := service.Create(context.Background(), usecase.CustomerInput{Name: "Mario", Phone: "call me"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCustomerService_Update_PhoneCollision(t *testing.T) {
	service, customerRepo, _ := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByID(ctx, "cust-1").
		Return(&entity.Customer{ID: "cust-1", Phone: "0501111111"}, nil)
	customerRepo.EXPECT().FindByPhone(ctx, "0502222222").
		Return(&entity.Customer{ID: "cust-2", Phone: "0502222222"}, nil)

	_, err := service.Update(ctx, "cust-1", usecase.CustomerInput{Name: "Mario", Phone: "0502222222"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePhone)
}

func TestCustomerService_Update_SamePhoneSkipsUniquenessCheck(t *testing.T) {
	service, customerRepo, orderRepo := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByID(ctx, "cust-1").
		Return(&entity.Customer{ID: "cust-1", Phone: "0501111111"}, nil)
	customerRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	orderRepo.EXPECT().FindByCustomerPhone(ctx, "0501111111").Return(nil, nil)

	customer, err := service.Update(ctx, "cust-1", usecase.CustomerInput{Name: "Maria", Phone: "0501111111"})

	require.NoError(t, err)
	assert.Equal(t, "Maria", customer.Name)
}

func TestCustomerService_History(t *testing.T) {
	service, customerRepo, orderRepo := createTestCustomerService(t)

	ctx := context.Background()
	orders := []*entity.Order{{ID: "ord-2"}, {ID: "ord-1"}}

	customerRepo.EXPECT().FindByID(ctx, "cust-1").
		Return(&entity.Customer{ID: "cust-1", Phone: "0501234567"}, nil)
	orderRepo.EXPECT().FindByCustomerPhone(ctx, "0501234567").Return(orders, nil)

	got, err := service.History(ctx, "cust-1")

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestCustomerService_Get_NotFound(t *testing.T) {
	service, customerRepo, _ := createTestCustomerService(t)

	ctx := context.Background()
	customerRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrCustomerNotFound)

	_, err := service.Get(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
