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
	mockUC "forno/internal/mocks/usecase"
	"forno/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockProductRepository,
	*mockRepo.MockCustomerRepository,
	*mockRepo.MockCounterRepository,
	*mockUC.MockEventFanout,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	counterRepo := mockRepo.NewMockCounterRepository(t)
	fanout := mockUC.NewMockEventFanout(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewOrderService(logger, orderRepo, productRepo, customerRepo, counterRepo, fanout)

	return service, orderRepo, productRepo, customerRepo, counterRepo, fanout
}

func adminActor() *entity.StaffProfile {
	return &entity.StaffProfile{ID: "admin-1", Role: entity.RoleAdministrator, Status: entity.StaffApproved}
}

func employeeActor() *entity.StaffProfile {
	return &entity.StaffProfile{ID: "emp-1", Role: entity.RoleEmployee, Status: entity.StaffApproved}
}

func testCatalog() map[string]*entity.Product {
	return map[string]*entity.Product{
		"margherita": {
			ID: "margherita", Name: "Margherita", Category: entity.CategoryPizza,
			Sizes: map[string]float64{"Small": 8, "Large": 12},
		},
		"diavola": {
			ID: "diavola", Name: "Diavola", Category: entity.CategoryPizza,
			Sizes: map[string]float64{"Small": 9, "Large": 14},
		},
		"cola": {
			ID: "cola", Name: "Cola", Category: entity.CategoryDrink,
			Sizes: map[string]float64{"0.5L": 2},
		},
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	service, orderRepo, productRepo, customerRepo, counterRepo, fanout := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.CreateOrderInput{
		CustomerName:  "Mario Rossi",
		CustomerPhone: "+994 (50) 123-45-67",
		OrderType:     entity.OrderTypePickup,
		Items: []usecase.OrderItemInput{
			{ProductID: "margherita", Quantity: 2, Size: "Large"},
			{ProductID: "cola", Quantity: 1, Size: "0.5L"},
		},
	}

	productRepo.EXPECT().FindByIDs(ctx, []string{"margherita", "cola"}).Return(testCatalog(), nil)
	customerRepo.EXPECT().FindByPhone(ctx, "994501234567").
		Return(&entity.Customer{ID: "cust-1", Phone: "994501234567"}, nil)
	counterRepo.EXPECT().Next(ctx, repository.OrdersCounter).Return(42, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Run(func(_ context.Context, event entity.Event) {
		assert.Equal(t, entity.EventOrderCreated, event.Type)
		assert.NotNil(t, event.Order)
	}).Return()

	order, err := service.Create(ctx, employeeActor(), input)

	require.NoError(t, err)
	assert.Equal(t, 42, order.OrderNumber)
	assert.Equal(t, entity.StatusReceived, order.Status)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, "994501234567", order.CustomerPhone)
	assert.Equal(t, 2*12+1*2.0, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Margherita", order.Items[0].ProductName)
	assert.False(t, order.Timestamp.IsZero())
}

func TestOrderService_Create_HalfHalfChargesPricierFlavor(t *testing.T) {
	service, orderRepo, productRepo, customerRepo, counterRepo, fanout := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.CreateOrderInput{
		CustomerName:  "Luigi",
		CustomerPhone: "0501112233",
		OrderType:     entity.OrderTypePickup,
		Items: []usecase.OrderItemInput{
			{ProductID: "margherita", Product2ID: "diavola", IsHalfHalf: true, Quantity: 1, Size: "Large"},
		},
	}

	productRepo.EXPECT().FindByIDs(ctx, []string{"margherita", "diavola"}).Return(testCatalog(), nil)
	customerRepo.EXPECT().FindByPhone(ctx, "0501112233").Return(nil, repository.ErrCustomerNotFound)
	customerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	counterRepo.EXPECT().Next(ctx, repository.OrdersCounter).Return(1, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Return()

	order, err := service.Create(ctx, employeeActor(), input)

	require.NoError(t, err)
	// Diavola Large at 14 beats Margherita Large at 12.
	assert.Equal(t, 14.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Margherita / Diavola", order.Items[0].ProductName)
	assert.True(t, order.Items[0].IsHalfHalf)
}

func TestOrderService_Create_DeliveryRequiresAdministrator(t *testing.T) {
	service, _, _, _, _, _ := createTestOrderService(t)

	input := usecase.CreateOrderInput{
		CustomerName: "Mario",
		OrderType:    entity.OrderTypeDelivery,
		Items:        []usecase.OrderItemInput{{ProductID: "margherita", Quantity: 1, Size: "Small"}},
	}

	_, err := service.Create(context.Background(), employeeActor(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestOrderService_Create_AdministratorMayCreateDelivery(t *testing.T) {
	service, orderRepo, productRepo, customerRepo, counterRepo, fanout := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.CreateOrderInput{
		CustomerName:  "Mario",
		CustomerPhone: "0507654321",
		OrderType:     entity.OrderTypeDelivery,
		Address:       "Via Roma 1",
		Items:         []usecase.OrderItemInput{{ProductID: "margherita", Quantity: 1, Size: "Small"}},
	}

	productRepo.EXPECT().FindByIDs(ctx, []string{"margherita"}).Return(testCatalog(), nil)
	customerRepo.EXPECT().FindByPhone(ctx, "0507654321").Return(nil, repository.ErrCustomerNotFound)
	customerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	counterRepo.EXPECT().Next(ctx, repository.OrdersCounter).Return(7, nil)
	orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Return()

	order, err := service.Create(ctx, adminActor(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderTypeDelivery, order.OrderType)
	assert.Equal(t, "Via Roma 1", order.Address)
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	service, _, productRepo, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	input := usecase.CreateOrderInput{
		CustomerName: "Mario",
		OrderType:    entity.OrderTypePickup,
		Items:        []usecase.OrderItemInput{{ProductID: "ghost", Quantity: 1}},
	}

	productRepo.EXPECT().FindByIDs(ctx, []string{"ghost"}).Return(map[string]*entity.Product{}, nil)

	_, err := service.Create(ctx, employeeActor(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_Create_RejectsEmptyAndInvalidInput(t *testing.T) {
	service, _, productRepo, _, _, _ := createTestOrderService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, employeeActor(), usecase.CreateOrderInput{
		CustomerName: "Mario",
		OrderType:    entity.OrderTypePickup,
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	_, err = service.Create(ctx, employeeActor(), usecase.CreateOrderInput{
		CustomerName: "Mario",
		OrderType:    entity.OrderType("drone"),
		Items:        []usecase.OrderItemInput{{ProductID: "margherita", Quantity: 1, Size: "Small"}},
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	productRepo.EXPECT().FindByIDs(ctx, []string{"margherita"}).Return(testCatalog(), nil)
	_, err = service.Create(ctx, employeeActor(), usecase.CreateOrderInput{
		CustomerName: "Mario",
		OrderType:    entity.OrderTypePickup,
		Items:        []usecase.OrderItemInput{{ProductID: "margherita", Quantity: 0, Size: "Small"}},
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Update_AdvancesStatus(t *testing.T) {
	service, orderRepo, _, _, _, fanout := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{
		ID: "ord-1", OrderNumber: 5, Status: entity.StatusPreparing, OrderType: entity.OrderTypePickup,
	}
	target := entity.StatusReady

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	orderRepo.EXPECT().
		UpdateStatusIf(ctx, "ord-1", entity.StatusPreparing, entity.StatusReady).
		Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Run(func(_ context.Context, event entity.Event) {
		assert.Equal(t, entity.EventOrderReady, event.Type)
	}).Return()

	order, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, order.Status)
}

func TestOrderService_Update_PreparingDoesNotRaiseEvent(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{ID: "ord-1", Status: entity.StatusReceived, OrderType: entity.OrderTypePickup}
	target := entity.StatusPreparing

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	orderRepo.EXPECT().
		UpdateStatusIf(ctx, "ord-1", entity.StatusReceived, entity.StatusPreparing).
		Return(nil)

	order, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, order.Status)
}

func TestOrderService_Update_ConcurrentStatusChangeConflicts(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{ID: "ord-1", Status: entity.StatusPreparing, OrderType: entity.OrderTypePickup}
	target := entity.StatusReady

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	orderRepo.EXPECT().
		UpdateStatusIf(ctx, "ord-1", entity.StatusPreparing, entity.StatusReady).
		Return(repository.ErrStatusMismatch)

	_, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	assert.ErrorIs(t, err, domainerrors.ErrStatusConflict)
}

func TestOrderService_Update_TerminalOrderRejectsEverything(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	target := entity.StatusCancelled
	notes := "too late"

	for _, terminal := range []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled, entity.StatusArchived} {
		orderRepo.EXPECT().FindByID(ctx, "ord-1").
			Return(&entity.Order{ID: "ord-1", Status: terminal, OrderType: entity.OrderTypePickup}, nil).Twice()

		_, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition, "status change on %s", terminal)

		_, err = service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Notes: &notes})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition, "content change on %s", terminal)
	}
}

func TestOrderService_Update_CancelUsesObservedStatus(t *testing.T) {
	service, orderRepo, _, _, _, fanout := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{ID: "ord-1", Status: entity.StatusOutForDelivery, OrderType: entity.OrderTypeDelivery}
	target := entity.StatusCancelled

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	orderRepo.EXPECT().
		UpdateStatusIf(ctx, "ord-1", entity.StatusOutForDelivery, entity.StatusCancelled).
		Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Run(func(_ context.Context, event entity.Event) {
		assert.Equal(t, entity.EventOrderCancelled, event.Type)
	}).Return()

	order, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, order.Status)
}

func TestOrderService_Update_ArchivedIsNotADirectTarget(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	target := entity.StatusArchived

	orderRepo.EXPECT().FindByID(ctx, "ord-1").
		Return(&entity.Order{ID: "ord-1", Status: entity.StatusReceived, OrderType: entity.OrderTypePickup}, nil)

	_, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Update_PickupSkipsOutForDelivery(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	target := entity.StatusOutForDelivery

	orderRepo.EXPECT().FindByID(ctx, "ord-1").
		Return(&entity.Order{ID: "ord-1", Status: entity.StatusReady, OrderType: entity.OrderTypePickup}, nil)

	_, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Update_StatusExcludesContentChanges(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	target := entity.StatusReady
	notes := "extra cheese"

	orderRepo.EXPECT().FindByID(ctx, "ord-1").
		Return(&entity.Order{ID: "ord-1", Status: entity.StatusPreparing, OrderType: entity.OrderTypePickup}, nil)

	_, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Status: &target, Notes: &notes})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Update_EditRepricesAndNotifies(t *testing.T) {
	service, orderRepo, productRepo, _, _, fanout := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{
		ID: "ord-1", OrderNumber: 9, Status: entity.StatusReceived, OrderType: entity.OrderTypePickup,
		Items: []entity.OrderItem{{ProductID: "cola", Quantity: 1, Size: "0.5L"}},
		Total: 2,
	}

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	productRepo.EXPECT().FindByIDs(ctx, []string{"diavola"}).Return(testCatalog(), nil)
	orderRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fanout.EXPECT().Dispatch(ctx, mock.Anything).Run(func(_ context.Context, event entity.Event) {
		assert.Equal(t, entity.EventOrderEdited, event.Type)
	}).Return()

	order, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: "diavola", Quantity: 2, Size: "Small"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 18.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Diavola", order.Items[0].ProductName)
}

func TestOrderService_Update_NotesOnlyEditDoesNotNotify(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	notes := "ring the bell"
	stored := &entity.Order{ID: "ord-1", Status: entity.StatusPreparing, OrderType: entity.OrderTypePickup}

	orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(stored, nil)
	orderRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	order, err := service.Update(ctx, "ord-1", usecase.UpdateOrderInput{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, "ring the bell", order.Notes)
}

func TestOrderService_Update_NotFound(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orderRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrOrderNotFound)

	_, err := service.Update(ctx, "missing", usecase.UpdateOrderInput{})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ArchiveAllAndReset(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orderRepo.EXPECT().ArchiveAllAndReset(ctx).Return(17, nil)

	archived, err := service.ArchiveAllAndReset(ctx)

	require.NoError(t, err)
	assert.Equal(t, 17, archived)
}

func TestOrderService_ListActive(t *testing.T) {
	service, orderRepo, _, _, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{{ID: "b"}, {ID: "a"}}
	orderRepo.EXPECT().FindActive(ctx).Return(orders, nil)

	got, err := service.ListActive(ctx)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
