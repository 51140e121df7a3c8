package firestore

import (
	"context"

	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type customerRepository struct {
	client *fs.Client
}

// NewCustomerRepository creates a Firestore-backed customer repository.
func NewCustomerRepository(client *fs.Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	doc, _, err := r.client.Collection(customersCollection).Add(ctx, model.FromCustomerEntity(customer))
	if err != nil {
		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = doc.ID

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	snap, err := r.client.Collection(customersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to get customer")
	}

	var m model.Customer
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	iter := r.client.Collection(customersCollection).
		Where("phone", "==", phone).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query customer by phone")
	}

	var m model.Customer
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	iter := r.client.Collection(customersCollection).Documents(ctx)
	defer iter.Stop()

	var customers []*entity.Customer
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list customers")
		}

		var m model.Customer
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode customer")
		}
		customers = append(customers, m.ToEntity(snap.Ref.ID))
	}

	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	_, err := r.client.Collection(customersCollection).Doc(customer.ID).Set(ctx, model.FromCustomerEntity(customer))
	if err != nil {
		return errors.Wrap(err, "failed to update customer")
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(customersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
