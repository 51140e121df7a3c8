package repository

import "context"

// OrdersCounter is the name of the counter document backing order numbering.
const OrdersCounter = "orders"

// CounterRepository allocates sequential numbers from named counter documents.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	// The read-increment-write runs inside a single store transaction so that
	// concurrent callers never receive the same number.
	Next(ctx context.Context, name string) (int, error)
}
