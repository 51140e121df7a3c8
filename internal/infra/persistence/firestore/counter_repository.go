package firestore

import (
	"context"

	"forno/internal/domain/repository"
	"forno/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type counterRepository struct {
	client *fs.Client
}

// NewCounterRepository creates a Firestore-backed counter repository.
func NewCounterRepository(client *fs.Client) repository.CounterRepository {
	return &counterRepository{client: client}
}

// Next increments the named counter inside a transaction. A missing counter
// document starts the sequence at 1.
func (r *counterRepository) Next(ctx context.Context, name string) (int, error) {
	ref := r.client.Collection(countersCollection).Doc(name)

	var next int
	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		current := 0

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			var m model.Counter
			if err := snap.DataTo(&m); err != nil {
				return err
			}
			current = m.CurrentNumber
		}

		next = current + 1

		return tx.Set(ref, &model.Counter{CurrentNumber: next})
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to allocate counter value")
	}

	return next, nil
}
