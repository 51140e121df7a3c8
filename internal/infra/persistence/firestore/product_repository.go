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

type productRepository struct {
	client *fs.Client
}

// NewProductRepository creates a Firestore-backed catalog repository.
func NewProductRepository(client *fs.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	doc, _, err := r.client.Collection(productsCollection).Add(ctx, model.FromProductEntity(product))
	if err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = doc.ID

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	var m model.Product
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode product")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	if len(ids) == 0 {
		return map[string]*entity.Product{}, nil
	}

	refs := make([]*fs.DocumentRef, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, r.client.Collection(productsCollection).Doc(id))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch get products")
	}

	products := make(map[string]*entity.Product, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var m model.Product
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product")
		}
		products[snap.Ref.ID] = m.ToEntity(snap.Ref.ID)
	}

	return products, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}

		var m model.Product
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product")
		}
		products = append(products, m.ToEntity(snap.Ref.ID))
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, model.FromProductEntity(product))
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
