package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type orderService struct {
	logger       *slog.Logger
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	counterRepo  repository.CounterRepository
	fanout       usecase.EventFanout
}

// NewOrderService creates the order lifecycle manager.
func NewOrderService(
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	counterRepo repository.CounterRepository,
	fanout usecase.EventFanout,
) usecase.OrderUsecase {
	return &orderService{
		logger:       logger,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		counterRepo:  counterRepo,
		fanout:       fanout,
	}
}

// ListActive returns all non-Archived orders, newest first.
func (s *orderService) ListActive(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	return orders, nil
}

// Create validates and prices the order, allocates its sequential number and
// persists it with status Received.
func (s *orderService) Create(ctx context.Context, actor *entity.StaffProfile, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	if !input.OrderType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order type")
	}
	// Delivery orders are an administrator-only option.
	if input.OrderType == entity.OrderTypeDelivery && actor.Role != entity.RoleAdministrator {
		return nil, domainerrors.ErrForbidden.WithDetails("only administrators may create delivery orders")
	}

	items, total, err := s.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	// The counter transaction linearizes concurrent creations: no two orders
	// ever share a number within an epoch.
	number, err := s.counterRepo.Next(ctx, repository.OrdersCounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate order number")
	}

	order := &entity.Order{
		OrderNumber:   number,
		CustomerID:    customerID,
		CustomerName:  input.CustomerName,
		CustomerPhone: entity.NormalizePhone(input.CustomerPhone),
		Items:         items,
		Total:         total,
		Status:        entity.StatusReceived,
		Timestamp:     time.Now().UTC(),
		OrderType:     input.OrderType,
		Address:       input.Address,
		LocationLink:  input.LocationLink,
		Notes:         input.Notes,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	s.fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderCreated, Order: order})

	return order, nil
}

// Update applies a partial update. A status change is exclusive of content
// changes so that the compare-and-swap semantics stay unambiguous.
func (s *orderService) Update(ctx context.Context, id string, input usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if input.Status != nil {
		if input.Items != nil || input.Address != nil || input.LocationLink != nil || input.Notes != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a status change cannot be combined with content changes")
		}

		return s.transition(ctx, order, *input.Status)
	}

	return s.edit(ctx, order, input)
}

// transition advances or cancels the lifecycle as an atomic compare-and-swap
// against the status the target implies.
func (s *orderService) transition(ctx context.Context, order *entity.Order, target entity.OrderStatus) (*entity.Order, error) {
	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition
	}

	var (
		expected entity.OrderStatus
		event    entity.EventType
	)

	switch target {
	case entity.StatusCancelled:
		// Cancel force-transitions from whichever non-terminal state the
		// caller observed.
		expected = order.Status
		event = entity.EventOrderCancelled
	case entity.StatusArchived:
		return nil, domainerrors.ErrValidationFailed.WithDetails("orders are archived through the bulk archive only")
	default:
		prev, ok := predecessorOf(target, order.OrderType)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unreachable target status")
		}
		expected = prev
		switch target {
		case entity.StatusReady:
			event = entity.EventOrderReady
		case entity.StatusDelivered:
			event = entity.EventOrderDelivered
		}
	}

	if err := s.orderRepo.UpdateStatusIf(ctx, order.ID, expected, target); err != nil {
		if errors.Is(err, repository.ErrStatusMismatch) {
			return nil, domainerrors.ErrStatusConflict
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = target
	if event != "" {
		s.fanout.Dispatch(ctx, entity.Event{Type: event, Order: order})
	}

	return order, nil
}

// predecessorOf returns the status an order must currently hold for target to
// be the legal next step.
func predecessorOf(target entity.OrderStatus, orderType entity.OrderType) (entity.OrderStatus, bool) {
	switch target {
	case entity.StatusPreparing:
		return entity.StatusReceived, true
	case entity.StatusReady:
		return entity.StatusPreparing, true
	case entity.StatusOutForDelivery:
		if orderType == entity.OrderTypeDelivery {
			return entity.StatusReady, true
		}

		return "", false
	case entity.StatusDelivered:
		if orderType == entity.OrderTypeDelivery {
			return entity.StatusOutForDelivery, true
		}

		return entity.StatusReady, true
	default:
		return "", false
	}
}

// edit replaces items, address and notes on a non-terminal order and
// reprices it when items changed.
func (s *orderService) edit(ctx context.Context, order *entity.Order, input usecase.UpdateOrderInput) (*entity.Order, error) {
	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition
	}

	itemsChanged := input.Items != nil
	if itemsChanged {
		items, total, err := s.priceItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	}
	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.LocationLink != nil {
		order.LocationLink = *input.LocationLink
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	if itemsChanged {
		s.fanout.Dispatch(ctx, entity.Event{Type: entity.EventOrderEdited, Order: order})
	}

	return order, nil
}

// Delete hard-deletes one order. Administrative/debug use only.
func (s *orderService) Delete(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// ArchiveAllAndReset archives every active order and restarts numbering.
func (s *orderService) ArchiveAllAndReset(ctx context.Context) (int, error) {
	archived, err := s.orderRepo.ArchiveAllAndReset(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to archive orders")
	}

	s.logger.Info("archived all active orders and reset the counter",
		slog.Int("archived", archived),
	)

	return archived, nil
}

// priceItems resolves products, applies the pricing rules and returns the
// denormalized line items plus the order total.
func (s *orderService) priceItems(ctx context.Context, inputs []usecase.OrderItemInput) ([]entity.OrderItem, float64, error) {
	ids := make([]string, 0, len(inputs)*2)
	for _, item := range inputs {
		ids = append(ids, item.ProductID)
		if item.IsHalfHalf && item.Product2ID != "" {
			ids = append(ids, item.Product2ID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to resolve products")
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	var total float64

	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}

		product, ok := products[input.ProductID]
		if !ok {
			return nil, 0, domainerrors.ErrProductNotFound.WithDetails("unknown product " + input.ProductID)
		}

		unitPrice, priced := product.UnitPrice(input.Size)
		if !priced {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("product " + product.Name + " requires a valid size")
		}
		name := product.Name

		if input.IsHalfHalf && input.Product2ID != "" {
			second, ok := products[input.Product2ID]
			if !ok {
				return nil, 0, domainerrors.ErrProductNotFound.WithDetails("unknown product " + input.Product2ID)
			}
			secondPrice, priced := second.UnitPrice(input.Size)
			if !priced {
				return nil, 0, domainerrors.ErrValidationFailed.WithDetails("product " + second.Name + " requires a valid size")
			}
			// Half-and-half charges for the pricier half, not the sum.
			unitPrice = max(unitPrice, secondPrice)
			name = strings.Join([]string{product.Name, second.Name}, " / ")
		}

		items = append(items, entity.OrderItem{
			ProductID:   input.ProductID,
			Product2ID:  input.Product2ID,
			IsHalfHalf:  input.IsHalfHalf,
			ProductName: name,
			Quantity:    input.Quantity,
			Size:        input.Size,
		})
		total += unitPrice * float64(input.Quantity)
	}

	return items, total, nil
}

// resolveCustomer matches the order to a customer by normalized phone,
// creating the customer when none exists yet.
func (s *orderService) resolveCustomer(ctx context.Context, input usecase.CreateOrderInput) (string, error) {
	phone := entity.NormalizePhone(input.CustomerPhone)
	if phone == "" {
		return "", nil
	}

	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err == nil {
		return customer.ID, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return "", errors.Wrap(err, "failed to look up customer")
	}

	customer = &entity.Customer{
		Name:         input.CustomerName,
		Phone:        phone,
		Address:      input.Address,
		LocationLink: input.LocationLink,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return "", errors.Wrap(err, "failed to create customer")
	}

	return customer.ID, nil
}
