package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// EventFanout broadcasts a domain event to its computed audience: one
// persisted in-app notification per recipient plus a best-effort push to each
// recipient with a registered device token.
//
// Dispatch never returns an error: fan-out failures are logged and swallowed
// so they can never roll back the mutation that raised the event.
type EventFanout interface {
	Dispatch(ctx context.Context, event entity.Event)
}
