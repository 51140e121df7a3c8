package firestore

import (
	"context"
	"sort"
	"time"

	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type orderRepository struct {
	client *fs.Client
}

// NewOrderRepository creates a Firestore-backed order repository.
func NewOrderRepository(client *fs.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	doc, _, err := r.client.Collection(ordersCollection).Add(ctx, model.FromOrderEntity(order))
	if err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = doc.ID

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	var m model.Order
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode order")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *orderRepository) FindActive(ctx context.Context) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).
		Where("status", "!=", string(entity.StatusArchived)).
		Documents(ctx)

	orders, err := collectOrders(iter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query active orders")
	}

	sortOrdersNewestFirst(orders)

	return orders, nil
}

func (r *orderRepository) FindByCustomerPhone(ctx context.Context, phone string) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).
		Where("customerPhone", "==", phone).
		Documents(ctx)

	orders, err := collectOrders(iter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders by phone")
	}

	sortOrdersNewestFirst(orders)

	return orders, nil
}

func (r *orderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).
		Where("timestamp", ">=", from).
		Where("timestamp", "<", to).
		Documents(ctx)

	orders, err := collectOrders(iter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders by time range")
	}

	sortOrdersNewestFirst(orders)

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, model.FromOrderEntity(order))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func (r *orderRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entity.OrderStatus) error {
	ref := r.client.Collection(ordersCollection).Doc(id)

	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrOrderNotFound
			}

			return err
		}

		var m model.Order
		if err := snap.DataTo(&m); err != nil {
			return err
		}

		if entity.OrderStatus(m.Status) != expected {
			return repository.ErrStatusMismatch
		}

		return tx.Update(ref, []fs.Update{{Path: "status", Value: string(next)}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) || errors.Is(err, repository.ErrStatusMismatch) {
			return err
		}

		return errors.Wrap(err, "failed to transition order status")
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(ordersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func (r *orderRepository) ArchiveAllAndReset(ctx context.Context) (int, error) {
	iter := r.client.Collection(ordersCollection).
		Where("status", "!=", string(entity.StatusArchived)).
		Documents(ctx)
	defer iter.Stop()

	var refs []*fs.DocumentRef
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to query orders for archiving")
		}
		refs = append(refs, snap.Ref)
	}

	counterRef := r.client.Collection(countersCollection).Doc(repository.OrdersCounter)

	// Batches hold at most 500 writes; the counter reset rides in the final
	// batch so an empty collection still resets the numbering.
	for start := 0; start == 0 || start < len(refs); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(refs) {
			end = len(refs)
		}

		batch := r.client.Batch()
		for _, ref := range refs[start:end] {
			batch.Update(ref, []fs.Update{{Path: "status", Value: string(entity.StatusArchived)}})
		}
		if end == len(refs) {
			batch.Set(counterRef, &model.Counter{CurrentNumber: 0})
		}

		if _, err := batch.Commit(ctx); err != nil {
			return 0, errors.Wrap(err, "failed to commit archive batch")
		}
	}

	return len(refs), nil
}

func collectOrders(iter *fs.DocumentIterator) ([]*entity.Order, error) {
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var m model.Order
		if err := snap.DataTo(&m); err != nil {
			return nil, err
		}
		orders = append(orders, m.ToEntity(snap.Ref.ID))
	}

	return orders, nil
}

func sortOrdersNewestFirst(orders []*entity.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
}
