// Package firestore implements the repository interfaces on Cloud Firestore.
//
// Queries deliberately avoid composite indexes: inequality and multi-field
// filters return unordered results and the repositories sort in memory, so a
// fresh project works without any index provisioning.
package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
)

// Collection names.
const (
	ordersCollection        = "orders"
	productsCollection      = "products"
	customersCollection     = "customers"
	usersCollection         = "users"
	notificationsCollection = "notifications"
	countersCollection      = "counters"
)

// maxBatchWrites is Firestore's per-batch write limit.
const maxBatchWrites = 500

// NewClient opens the Firestore client of the configured Firebase project.
func NewClient(ctx context.Context, app *firebase.App) (*fs.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	return client, nil
}
